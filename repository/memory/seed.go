package memory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/synergysphere/backend/domain"
)

// SeedPassword is the demo secret shared by all seeded identities.
const SeedPassword = "password"

// Seed loads the demo fixtures: three identities, two projects, three tasks
// and one notification. Counters are set consistent with the seeded task
// collection. Fixtures double as test data; production deployments disable
// seeding through config.
func (s *Store) Seed() error {
	hash, err := bcrypt.GenerateFromPassword([]byte(SeedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	sarah := &domain.User{
		ID:           "1",
		Name:         "Sarah Johnson",
		Email:        "sarah@synergysphere.com",
		Initials:     "SJ",
		PasswordHash: hash,
		CreatedAt:    at("2024-01-01T00:00:00Z"),
	}
	michael := &domain.User{
		ID:           "2",
		Name:         "Michael Chen",
		Email:        "michael@synergysphere.com",
		Initials:     "MC",
		PasswordHash: hash,
		CreatedAt:    at("2024-01-01T00:00:00Z"),
	}
	emily := &domain.User{
		ID:           "3",
		Name:         "Emily Rodriguez",
		Email:        "emily@synergysphere.com",
		Initials:     "ER",
		PasswordHash: hash,
		CreatedAt:    at("2024-01-01T00:00:00Z"),
	}

	projects := []*domain.Project{
		{
			ID:             "1",
			Name:           "Mobile App Redesign",
			Description:    "Complete redesign of our mobile application with improved UX",
			Members:        []domain.User{*sarah, *michael},
			Owner:          *sarah,
			TaskCount:      2,
			CompletedTasks: 0,
			CreatedAt:      at("2024-01-15T00:00:00Z"),
		},
		{
			ID:             "2",
			Name:           "Marketing Campaign Q1",
			Description:    "Launch comprehensive marketing campaign for Q1 2024",
			Members:        []domain.User{*sarah, *emily},
			Owner:          *emily,
			TaskCount:      1,
			CompletedTasks: 1,
			CreatedAt:      at("2024-01-10T00:00:00Z"),
		},
	}

	tasks := []*domain.Task{
		{
			ID:          "1",
			Title:       "Design new login screen",
			Description: "Create modern, accessible login interface with improved security features",
			ProjectID:   "1",
			Assignee:    *sarah,
			Creator:     *sarah,
			Status:      domain.StatusInProgress,
			Priority:    domain.PriorityHigh,
			DueDate:     at("2024-02-01T00:00:00Z"),
			CreatedAt:   at("2024-01-15T10:00:00Z"),
			UpdatedAt:   at("2024-01-20T14:30:00Z"),
		},
		{
			ID:          "2",
			Title:       "Implement user authentication",
			Description: "Build secure authentication system with JWT tokens",
			ProjectID:   "1",
			Assignee:    *michael,
			Creator:     *sarah,
			Status:      domain.StatusTodo,
			Priority:    domain.PriorityHigh,
			DueDate:     at("2024-02-05T00:00:00Z"),
			CreatedAt:   at("2024-01-15T11:00:00Z"),
			UpdatedAt:   at("2024-01-15T11:00:00Z"),
		},
		{
			ID:          "3",
			Title:       "Content strategy planning",
			Description: "Develop comprehensive content strategy for social media channels",
			ProjectID:   "2",
			Assignee:    *emily,
			Creator:     *emily,
			Status:      domain.StatusDone,
			Priority:    domain.PriorityMedium,
			DueDate:     at("2024-01-25T00:00:00Z"),
			CreatedAt:   at("2024-01-10T09:00:00Z"),
			UpdatedAt:   at("2024-01-22T16:45:00Z"),
		},
	}

	notification := &domain.Notification{
		ID:        "1",
		Type:      domain.NotificationTaskAssigned,
		Title:     "New task assigned",
		Message:   `You have been assigned to "Design new login screen"`,
		Read:      false,
		ProjectID: "1",
		TaskID:    "1",
		CreatedAt: at("2024-01-20T10:00:00Z"),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range []*domain.User{sarah, michael, emily} {
		s.insertUser(u)
	}
	for _, p := range projects {
		s.insertProject(p)
	}
	for _, t := range tasks {
		s.insertTask(t)
	}
	s.insertNotification(notification)
	return nil
}

func at(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}
