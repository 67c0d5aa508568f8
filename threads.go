package bccount

import (
	"os"
	"runtime"
	"strconv"
)

// SchedulerThreadsVar is set by SLURM to the number of CPUs granted to a task.
const SchedulerThreadsVar = "SLURM_CPUS_PER_TASK"

// AvailableThreads returns the worker count hinted by the scheduler, or
// runtime.NumCPU() when no usable hint is present.
func AvailableThreads() int {
	return threadsFromHint(os.Getenv(SchedulerThreadsVar))
}

func threadsFromHint(hint string) int {
	if n, err := strconv.Atoi(hint); err == nil && n > 0 {
		return n
	}

	return runtime.NumCPU()
}
