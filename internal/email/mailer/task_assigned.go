// internal/email/mailer/task_assigned.go
package mailer

import "github.com/opsdesk/taskboard/internal/email"

// TaskAssignedTemplateData contains data for the assignment email template
type TaskAssignedTemplateData struct {
	Name     string
	TaskName string
	TaskLink string
}

// SendTaskAssignedEmail tells a user a task was assigned to them
func SendTaskAssignedEmail(s *email.Service, to, name, taskName, taskLink string) error {
	templateData := TaskAssignedTemplateData{
		Name:     name,
		TaskName: taskName,
		TaskLink: taskLink,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "Taskboard",
		Subject:      "A task was assigned to you: " + taskName,
		TemplateName: "task_assigned",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
