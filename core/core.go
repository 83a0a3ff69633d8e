// Package core implements the dimensional aggregation and chart
// specification engine. It turns a set of traffic-event records plus a
// dimension selection and chart type into a declarative chart spec that any
// renderer can consume. The engine is pure and stateless: identical inputs
// always produce identical output, and no call ever panics or errors out to
// the caller. Failure modes are expressed as placeholder specs.
package core
