package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/knowledgehub/knowledge-platform/internal/core/domain"
)

// demoPassword is shared by all seeded demo accounts.
const demoPassword = "demo123"

// Seed provisions the demo identities and catalog. Idempotent: it is a
// no-op when any user already exists.
func Seed(ctx context.Context, db *sql.DB) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash demo password: %w", err)
	}

	users := NewUserRepository(db)
	now := time.Now().UTC()
	for _, u := range demoUsers() {
		u.PasswordHash = string(hash)
		u.CreatedAt = now
		if _, err := users.Create(ctx, &u); err != nil {
			return fmt.Errorf("seed: create user %s: %w", u.Username, err)
		}
	}

	artifacts := NewArtifactRepository(db)
	for _, a := range demoArtifacts() {
		if err := artifacts.Create(ctx, a); err != nil {
			return fmt.Errorf("seed: create artifact %q: %w", a.Title, err)
		}
	}

	return nil
}

func demoUsers() []domain.User {
	return []domain.User{
		{Username: "demo_ceo", FullName: "John Smith", Role: domain.RoleCEO, Level: 100, IsHR: false},
		{Username: "demo_engineer", FullName: "Alice Johnson", Role: domain.RoleEngineer, Level: 40, IsHR: false},
		{Username: "demo_intern", FullName: "Bob Wilson", Role: domain.RoleIntern, Level: 10, IsHR: false},
		{Username: "demo_hr", FullName: "Grace Lee", Role: domain.RoleHR, Level: 20, IsHR: true},
	}
}

// DemoUsernames lists the accounts Seed provisions, in seed order. The
// service banner publishes them so demo deployments are self-describing.
func DemoUsernames() []string {
	users := demoUsers()
	names := make([]string, len(users))
	for i, u := range users {
		names[i] = u.Username
	}
	return names
}

func demoArtifacts() []*domain.Artifact {
	return []*domain.Artifact{
		{
			Title:       "Company Onboarding Guide",
			Content:     "Welcome to the company! This comprehensive guide covers basic policies, procedures, and getting started information for new employees.",
			Type:        domain.TypeDocumentation,
			AccessLevel: 10,
			Tags:        []string{"onboarding", "basics", "welcome"},
			CreatedAt:   time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Python Development Standards",
			Content:     "Our coding standards for Python development including PEP 8 compliance, testing requirements, code review processes, and deployment guidelines.",
			Type:        domain.TypeDocumentation,
			AccessLevel: 30,
			Tags:        []string{"python", "coding", "standards", "development"},
			CreatedAt:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Architecture Decision Record - Microservices Migration",
			Content:     "Decision to migrate from monolith to microservices architecture. Includes rationale, implementation plan, timeline, and technical considerations.",
			Type:        domain.TypeArchitectureDoc,
			AccessLevel: 60,
			Tags:        []string{"architecture", "microservices", "migration", "technical"},
			CreatedAt:   time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Strategic Product Roadmap Q1-Q4 2024",
			Content:     "Confidential 12-month product strategy including competitive analysis, market positioning, feature priorities, and financial projections.",
			Type:        domain.TypeStrategy,
			AccessLevel: 80,
			Tags:        []string{"strategy", "roadmap", "confidential", "leadership"},
			CreatedAt:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Employee Benefits Overview",
			Content:     "Summary of health coverage, retirement plans, leave policies, and wellness programs available to all employees.",
			Type:        domain.TypeHRPolicy,
			AccessLevel: 0,
			IsHROnly:    true,
			Tags:        []string{"benefits", "hr", "policy"},
			CreatedAt:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		},
		{
			Title:       "Compensation Bands 2024",
			Content:     "Salary bands by role and level, promotion criteria, and equity refresh guidelines. Restricted to HR personnel.",
			Type:        domain.TypeHRPolicy,
			AccessLevel: 20,
			IsHROnly:    true,
			Tags:        []string{"compensation", "hr", "confidential"},
			CreatedAt:   time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC),
		},
	}
}
