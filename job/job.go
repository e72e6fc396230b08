package job

import (
	"iter"
	"slices"
)

// Job is the ordered sequence of tasks parsed from one source.
type Job struct {
	Tasks []Task `json:"tasks" yaml:"tasks"`
}

// Task is a sequential singleton or a concurrent group of processes.
// A task with two or more processes is concurrent; the grammar never
// produces an empty task or a singleton group.
type Task struct {
	Processes []Process `json:"processes" yaml:"processes"`
}

// Process is a named unit with optional continuations.
//
// OnSucceed and OnFail are raw process names and are nil when absent.
type Process struct {
	Name        string   `json:"name"                yaml:"name"`
	OnSucceed   *string  `json:"onsucceed,omitempty" yaml:"onsucceed,omitempty"`
	OnFail      *string  `json:"onfail,omitempty"    yaml:"onfail,omitempty"`
	Silent      bool     `json:"silent"              yaml:"silent"`
	LogMonitors []string `json:"log_monitors"        yaml:"log_monitors"`
}

// Match locates a process within a job.
type Match struct {
	Task    int     `json:"task"    yaml:"task"`
	Index   int     `json:"index"   yaml:"index"`
	Process Process `json:"process" yaml:"process"`
}

// Concurrent reports whether the task is a concurrent group.
func (t Task) Concurrent() bool { return len(t.Processes) >= 2 }

// All returns an iterator over every process in the job in source order.
func (j *Job) All() iter.Seq[Match] {
	return func(yield func(Match) bool) {
		for ti, task := range j.Tasks {
			for pi, proc := range task.Processes {
				if !yield(Match{Task: ti, Index: pi, Process: proc}) {
					return
				}
			}
		}
	}
}

// Names returns the name of every process in source order.
func (j *Job) Names() []string {
	names := make([]string, 0, len(j.Tasks))
	for m := range j.All() {
		names = append(names, m.Process.Name)
	}

	return names
}

// Len returns the number of processes in the job.
func (j *Job) Len() int {
	n := 0
	for _, task := range j.Tasks {
		n += len(task.Processes)
	}

	return n
}

// Clone returns a deep copy of the job.
func (j *Job) Clone() *Job {
	if j == nil {
		return nil
	}

	c := &Job{Tasks: make([]Task, len(j.Tasks))}
	for i, task := range j.Tasks {
		c.Tasks[i] = task.Clone()
	}

	return c
}

// Clone returns a deep copy of the task.
func (t Task) Clone() Task {
	c := Task{Processes: make([]Process, len(t.Processes))}
	for i, proc := range t.Processes {
		c.Processes[i] = proc.Clone()
	}

	return c
}

// Clone returns a deep copy of the process.
func (p Process) Clone() Process {
	p.OnSucceed = cloneName(p.OnSucceed)
	p.OnFail = cloneName(p.OnFail)
	p.LogMonitors = slices.Clone(p.LogMonitors)

	return p
}

func cloneName(s *string) *string {
	if s == nil {
		return nil
	}

	c := *s

	return &c
}

// deref returns the name s points to, or the empty string.
func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
