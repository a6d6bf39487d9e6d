//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sue-zadeh/fieldbase/internal/domain/models"
	"github.com/sue-zadeh/fieldbase/internal/domain/repository"
	"github.com/sue-zadeh/fieldbase/internal/domain/service"
	"github.com/sue-zadeh/fieldbase/internal/infrastructure/persistence/postgres"
	"github.com/sue-zadeh/fieldbase/pkg/constants"
	"github.com/sue-zadeh/fieldbase/pkg/logger"
)

// TestRiskLifecycleAgainstPostgres runs the full assessment lifecycle against
// a real postgres container, exercising the ON CONFLICT paths sqlite cannot
// fully mirror.
func TestRiskLifecycleAgainstPostgres(t *testing.T) {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("fieldbase_test"),
		tcpostgres.WithUsername("fieldbase"),
		tcpostgres.WithPassword("fieldbase"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)
	defer container.Terminate(ctx)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	log := logger.NewNoop()
	catalogs := postgres.NewRiskCatalogRepository(db, log)
	risks := postgres.NewRiskRepository(db, log)
	assignments := postgres.NewAssignmentRepository(db, log)
	volunteers := postgres.NewVolunteerRepository(db, log)

	title := &models.RiskTitle{Title: "Working near water"}
	require.NoError(t, catalogs.CreateTitle(ctx, title))
	control := &models.RiskControl{RiskTitleID: title.ID, ControlText: "Wear life jackets"}
	require.NoError(t, catalogs.CreateControl(ctx, control))

	owner := repository.OwnerRef{Kind: constants.OwnerProject, ID: 1}
	instance := &models.RiskInstance{
		RiskTitleID: title.ID,
		Likelihood:  "likely",
		Consequence: "moderate",
		RatingLabel: string(service.Rate("likely", "moderate")),
	}
	_, err = risks.CreateAssessment(ctx, owner, instance, []int{control.ID})
	require.NoError(t, err)

	rows, err := risks.ListOwnerRisks(ctx, owner)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "high_risk", rows[0].RatingLabel)

	// Idempotent bulk attach through the real ON CONFLICT clause.
	for i := 0; i < 2; i++ {
		v := &models.Volunteer{
			FirstName: "Vol", LastName: "Tester",
			Email: "vol" + string(rune('a'+i)) + "@example.org",
		}
		require.NoError(t, volunteers.Create(ctx, v))
	}
	kind := constants.AssignProjectVolunteer
	require.NoError(t, assignments.AttachMany(ctx, kind, 1, []int{1, 2}))
	require.NoError(t, assignments.AttachMany(ctx, kind, 1, []int{1, 2}))

	assigned, err := assignments.ListAssigned(ctx, kind, 1)
	require.NoError(t, err)
	require.Len(t, assigned, 2)
}
