package model

// All lists every persisted model, in migration order.
func All() []any {
	return []any{
		&Question{},
		&Exam{},
		&Attempt{},
		&ExamSession{},
		&DailyPlan{},
		&SubjectPriority{},
		&ThemePreferences{},
	}
}
