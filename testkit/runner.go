package testkit

// Result is the outcome of a run.
type Result struct {
	Passed uint32
	Failed uint32
	// Failures maps failed case names to their first message.
	Failures map[string]string
	// ReportErr is the first error returned by the Reporter, if any.
	ReportErr error
}

// OK reports whether every case passed.
func (r Result) OK() bool {
	return r.Failed == 0
}

// Runner executes cases one after another.
type Runner struct {
	rep    Reporter
	idle   func()
	finish func(Result)
	err    error
}

// NewRunner returns a runner reporting to rep. idle is called while an
// assertion waits for tokens; on the host it advances the simulated chip.
// Either may be nil.
func NewRunner(rep Reporter, idle func()) *Runner {
	return &Runner{rep: rep, idle: idle}
}

// OnFinish sets a function called after the last case and before the
// summary is reported. Whatever it reports arrives ahead of the summary.
func (r *Runner) OnFinish(fn func(Result)) {
	r.finish = fn
}

func (r *Runner) report(err error) {
	if err != nil && r.err == nil {
		r.err = err
	}
}

// Run executes the cases and reports a summary.
func (r *Runner) Run(cases ...Case) Result {
	r.err = nil
	res := Result{Failures: make(map[string]string)}
	for _, c := range cases {
		t := r.runCase(c)
		if t.failed {
			res.Failed++
			res.Failures[t.name] = t.msg
		} else {
			res.Passed++
		}
	}
	if r.finish != nil {
		res.ReportErr = r.err
		r.finish(res)
	}
	if r.rep != nil {
		r.report(r.rep.Summary(res.Passed, res.Failed))
	}
	res.ReportErr = r.err
	return res
}

func (r *Runner) runCase(c Case) *T {
	t := &T{name: c.Name(), rep: r.rep, idle: r.idle}
	if r.rep != nil {
		r.report(r.rep.CaseStart(t.name))
	}
	current = t
	c.Setup(t)
	if !t.failed {
		c.Execute(t)
	}
	c.TearDown(t)
	current = nil
	r.report(t.repErr)

	if r.rep != nil {
		if t.failed {
			r.report(r.rep.CaseFail(t.name, t.msg))
		} else {
			r.report(r.rep.CasePass(t.name))
		}
	}
	return t
}

// Func adapts plain functions to a Case.
type Func struct {
	Desc       string
	SetupFn    func(t *T)
	TearDownFn func(t *T)
	ExecuteFn  func(t *T)
}

func (f Func) Name() string { return f.Desc }

func (f Func) Setup(t *T) {
	if f.SetupFn != nil {
		f.SetupFn(t)
	}
}

func (f Func) TearDown(t *T) {
	if f.TearDownFn != nil {
		f.TearDownFn(t)
	}
}

func (f Func) Execute(t *T) {
	if f.ExecuteFn != nil {
		f.ExecuteFn(t)
	}
}
