package main

import (
	"io"

	"github.com/nodeadmin/el-reasoner/concept"
	"github.com/nodeadmin/el-reasoner/internal/obslog"
	"github.com/nodeadmin/el-reasoner/loader"
	"github.com/nodeadmin/el-reasoner/ontology"
)

// load is a thin wrapper over loader.Load so the commands share one
// call site for the ontology-source front-end.
func load(r io.Reader) ([]ontology.Axiom, []*concept.Term, []string, error) {
	return loader.Load(r)
}

// warnFunc adapts a *obslog.Logger into the ontology.WarnFunc sink Build
// expects, so skipped axioms surface as structured log warnings instead of
// being silently dropped.
func warnFunc(l *obslog.Logger) ontology.WarnFunc {
	return func(msg string) {
		l.Warn(msg)
	}
}
