package models

import "time"

type ContactSubmission struct {
	Name    string `json:"name" db:"name"`
	Email   string `json:"email" db:"email"`
	Subject string `json:"subject" db:"subject"`
	Message string `json:"message" db:"message"`
}

// SubmissionRecord is a ContactSubmission as stored, with the identifier and
// creation time assigned by the persistence layer.
type SubmissionRecord struct {
	ContactSubmission
	ID        string    `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// SubmissionData is the public view of a stored submission returned to the caller.
type SubmissionData struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *SubmissionRecord) PublicData() SubmissionData {
	return SubmissionData{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
	}
}

// NotificationTask carries what the operator needs to see about one submission.
// It has no identity and lives for a single dispatch attempt.
type NotificationTask struct {
	Name    string
	Email   string
	Subject string
	Message string
}

func (r *SubmissionRecord) NotificationTask() NotificationTask {
	return NotificationTask{
		Name:    r.Name,
		Email:   r.Email,
		Subject: r.Subject,
		Message: r.Message,
	}
}
