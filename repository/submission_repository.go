package repository

import "mortgage-pulse/domain"

type SubmissionRepository interface {
	Save(submission domain.Submission) error
	List() ([]domain.Submission, error)
}
