// Package schedsim provides a single-machine CPU scheduling simulator.
//
// The simulator keeps a registry of synthetic processes and drives them
// through one of four classical disciplines, emitting a structured event
// for every executed cycle:
//
//   - fifo     – arrival order, run to completion
//   - sjf      – shortest remaining work first, run to completion
//   - priority – lowest priority value first, run to completion
//   - rr       – round robin with a fixed quantum (2 cycles by default)
//
// End-users typically interact with the simulator via the Service façade
// exposed by the root package:
//
//	srv, _ := schedsim.New()
//	srv.Registry().Create(ctx, "editor")
//	srv.Registry().Create(ctx, "compiler")
//	report, _ := srv.Run(ctx, "rr", func(e *event.Event) { fmt.Println(e.Kind, e.PID) })
//
// The interactive shell lives in service/shell and the command line entry
// point in cmd/schedsim.
package schedsim
