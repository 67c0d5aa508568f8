package bccount

import (
	"runtime"
	"testing"
)

func TestThreadsFromHint(t *testing.T) {
	for _, v := range []struct {
		Hint     string
		Expected int
	}{
		{"8", 8},
		{"1", 1},
		{"", runtime.NumCPU()},
		{"0", runtime.NumCPU()},
		{"-2", runtime.NumCPU()},
		{"many", runtime.NumCPU()},
	} {
		if n := threadsFromHint(v.Hint); n != v.Expected {
			t.Errorf("Hint %q: got %d, expected %d", v.Hint, n, v.Expected)
		}
	}
}

func TestAvailableThreadsFromEnvironment(t *testing.T) {
	t.Setenv(SchedulerThreadsVar, "3")

	if n := AvailableThreads(); n != 3 {
		t.Errorf("Expected 3 threads, got %d", n)
	}
}
