package domain

// GoalStatus compares the current dependence score with a reduction target.
// Goals are evaluated on request and never stored.
type GoalStatus struct {
	CurrentScore  float64
	TargetPercent int
	// Progress is CurrentScore/100 clamped to [0, 1], for a progress bar.
	Progress float64
	Met      bool
}

func Evaluate(score float64, target int) GoalStatus {
	progress := score / 100
	switch {
	case progress < 0:
		progress = 0
	case progress > 1:
		progress = 1
	}

	return GoalStatus{
		CurrentScore:  score,
		TargetPercent: target,
		Progress:      progress,
		Met:           score <= float64(target),
	}
}
