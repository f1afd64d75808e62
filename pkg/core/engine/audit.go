package engine

// Audit re-flattens coverage requirements for the range and reports every
// task with no covering assignment: same date, same physical station,
// overlapping window. It is a pure function of (rows, assignments) — no
// mutation, no roster, no eligibility logic. It answers "is this slot
// staffed by someone", not "by whom or validly".
func Audit(rows []CoverageRow, assignments []Assignment, from, to string, opts Options) ([]UnassignedTask, error) {
	dates, err := datesBetween(from, to)
	if err != nil {
		return nil, err
	}

	tasks, _ := flatten(rows, dates, opts)

	uncovered := []UnassignedTask{}
	for _, task := range tasks {
		iv, err := parseWindow(task.Start, task.End)
		if err != nil {
			continue
		}
		if coveredByExisting(task, iv, assignments) {
			continue
		}
		uncovered = append(uncovered, UnassignedTask{
			ShiftTask: task,
			Reason:    "no assignment covers this slot",
		})
	}

	return uncovered, nil
}
