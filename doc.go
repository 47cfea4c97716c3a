// Package lvbench measures how iteration and parallelization strategies
// compare on two CPU-bound workloads.
//
// What is inside:
//
//	array/      six ways to double every element of an int32 slice
//	matrix/     row-major int32 Dense and three ways to multiply two of them
//	parallel/   worker-bounded parallel-for (errgroup) and parallel-map (conc)
//	harness/    warmup, sampling via testing.Benchmark, statistics, table report
//	cmd/        the arraybench and matrixbench programs
//
// Every variant of a workload is verified against the sequential one before
// anything is timed, so a report never compares wrong answers.
//
// Quick start:
//
//	go run ./cmd/arraybench
//	go run ./cmd/matrixbench --size 256 --workers 4
//
// Both programs accept --config with a YAML file:
//
//	size: 1000000
//	workers: 8
//	log_level: debug
//	harness:
//	  samples: 10
//	  warmup: 3
//	  benchtime: 500ms
package lvbench
