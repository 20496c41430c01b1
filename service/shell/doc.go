// Package shell implements the interactive, line oriented front end of the simulator.
//
// Every input line holds one command:
//
//	create <name>
//	list
//	run <fifo|sjf|rr|priority>
//	block <pid>
//	unblock <pid>
//	kill <pid>
//	help
//	exit
//
// Failures are reported on the output and the session continues.
package shell
