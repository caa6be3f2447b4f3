package models

import "errors"

var (
	ErrEmptyQuestion     = errors.New("question must not be empty")
	ErrQuestionTooLong   = errors.New("question exceeds maximum length of 1000 characters")
	ErrEmptyQuestionID   = errors.New("question_id must not be empty")
	ErrEmptyFeedbackType = errors.New("feedback_type must not be empty")
)
