package allocation

import (
	"fmt"
	"log"

	"project-allocation-api/internal/models"
)

// Result summarizes one allocation pass.
type Result struct {
	AssignedCount int    `json:"assignedCount"`
	FailedCount   int    `json:"failedCount"`
	Message       string `json:"message"`
}

// Success reports whether every task was assigned.
func (r *Result) Success() bool {
	return r.FailedCount == 0
}

// Engine runs a single greedy allocation pass over a project: tasks are
// ordered once, then each task is given to the best-scoring member. Workload
// increases are visible to the scoring of later tasks in the same pass, so
// higher-priority tasks get first pick of capacity. The engine never
// backtracks or rebalances earlier assignments.
//
// Concurrent passes over the same project are not mutually excluded; two
// simultaneous passes can read the same unassigned set and over-assign.
// Known limitation.
type Engine struct {
	tasks   TaskStore
	members MemberStore
	emitter *Emitter
}

// NewEngine builds an engine from its three persistence collaborators.
func NewEngine(tasks TaskStore, members MemberStore, alerts AlertStore) *Engine {
	return &Engine{
		tasks:   tasks,
		members: members,
		emitter: NewEmitter(alerts),
	}
}

// Allocate assigns all unassigned tasks of a project. A failure to fetch
// the initial task or member lists aborts the pass; every later error is
// contained to its task and counted as a failure.
func (e *Engine) Allocate(projectID string) (*Result, error) {
	log.Printf("Starting task allocation for project: %s", projectID)

	unassigned, err := e.tasks.FindUnassignedByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("fetch unassigned tasks: %w", err)
	}
	members, err := e.members.FindAll()
	if err != nil {
		return nil, fmt.Errorf("fetch members: %w", err)
	}

	if len(unassigned) == 0 {
		log.Printf("No unassigned tasks found for project: %s", projectID)
		return &Result{Message: "No unassigned tasks"}, nil
	}
	if len(members) == 0 {
		log.Printf("No available members found")
		return &Result{FailedCount: len(unassigned), Message: "No available members"}, nil
	}

	sorted := PrioritizeTasks(unassigned)

	// Workloads are threaded through the pass as a map instead of mutating
	// the shared Member records; each assignment updates the map so later
	// tasks score against the increased load.
	workloads := make(map[string]float64, len(members))
	for _, m := range members {
		workloads[m.ID] = m.CurrentWorkload
	}

	assigned := 0
	failed := 0
	for i := range sorted {
		d := e.processTask(&sorted[i], projectID, members, workloads)
		assigned += d.assigned
		failed += d.failed
	}

	message := fmt.Sprintf("Assigned %d tasks, failed %d", assigned, failed)
	log.Printf("Allocation complete: %s", message)

	return &Result{AssignedCount: assigned, FailedCount: failed, Message: message}, nil
}

// taskDelta is the per-task contribution to the pass counters. A task
// normally yields exactly one of the two, but an alert-write failure after
// a committed assignment counts on both sides, matching the per-task error
// accounting of the rest of the pass.
type taskDelta struct {
	assigned int
	failed   int
}

func (e *Engine) processTask(task *models.Task, projectID string, members []models.Member, workloads map[string]float64) taskDelta {
	best := -1
	bestScore := -1.0
	for i := range members {
		s := ScoreMember(task, &members[i], workloads[members[i].ID])
		// Strict comparison: the first member seen wins ties.
		if s.Value > bestScore {
			bestScore = s.Value
			best = i
		}
	}

	if best < 0 || bestScore < MinScore {
		log.Printf("Could not find suitable member for task: %s", task.Title)
		d := taskDelta{failed: 1}
		if err := e.emitter.EmitUnassignable(task, projectID); err != nil {
			log.Printf("Failed to create alert for task %s: %v", task.ID, err)
			d.failed++
		}
		return d
	}

	return e.commit(task, &members[best], workloads)
}

// commit persists an assignment and its workload increase, raising an
// overload alert when the new load exceeds the member's weekly availability.
// The availability gate normally prevents overload within one pass, but a
// concurrent pass or stale member read can still push a member past
// capacity, and that is exactly the condition worth flagging.
func (e *Engine) commit(task *models.Task, member *models.Member, workloads map[string]float64) taskDelta {
	if err := e.tasks.Assign(task.ID, member.ID); err != nil {
		log.Printf("Error assigning task %s: %v", task.Title, err)
		return taskDelta{failed: 1}
	}
	task.AssignedMemberID = &member.ID
	task.AssignedMemberName = member.Name
	task.Status = models.StatusTodo

	// Record the increase before persisting it: later tasks in this pass
	// must see the new load even if the write below fails.
	newWorkload := workloads[member.ID] + task.EstimatedHours
	workloads[member.ID] = newWorkload

	if err := e.members.UpdateWorkload(member.ID, newWorkload); err != nil {
		log.Printf("Error updating workload for member %s: %v", member.ID, err)
		return taskDelta{failed: 1}
	}

	log.Printf("Assigned task '%s' to member '%s'", task.Title, member.Name)
	d := taskDelta{assigned: 1}

	if newWorkload > float64(member.WeeklyAvailability) {
		if err := e.emitter.EmitOverload(member, task, newWorkload); err != nil {
			log.Printf("Failed to create overload alert for member %s: %v", member.ID, err)
			d.failed++
		}
	}
	return d
}
