package integration

import (
	"context"
	"fmt"
	"log"
	"os"
	"testing"

	"pawhaven-be/internal/dto"
	"pawhaven-be/internal/entity"
	"pawhaven-be/internal/pkg/logger"
	"pawhaven-be/internal/repository/implementation"
	"pawhaven-be/internal/repository/unitofwork"
	"pawhaven-be/internal/service"
	"pawhaven-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db           *gorm.DB
	uowFactory   unitofwork.RepositoryFactory
	notifService *service.NotificationService
	adoptions    service.IAdoptionService
	products     service.IProductService
	favorites    service.IFavoriteService
	preferences  service.IPreferenceService
	log          logger.ILogger
}

func setup(t *testing.T) *testEnv {
	t.Helper()

	if err := godotenv.Load("../../.env"); err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	require.NoError(t, err)

	uowFactory := unitofwork.NewRepositoryFactory(db)
	testLogger := logger.NewIsolatedLogger(t.TempDir() + "/test.log")

	notifRepo := implementation.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, nil, nil, testLogger)

	return &testEnv{
		db:           db,
		uowFactory:   uowFactory,
		notifService: notifService,
		adoptions:    service.NewAdoptionService(uowFactory, notifService, nil, testLogger),
		products:     service.NewProductService(uowFactory, testLogger),
		favorites:    service.NewFavoriteService(uowFactory),
		preferences:  service.NewPreferenceService(uowFactory),
		log:          testLogger,
	}
}

func (e *testEnv) createUser(t *testing.T, role string) *entity.User {
	t.Helper()
	ctx := context.Background()
	uow := e.uowFactory.NewUnitOfWork(ctx)

	user := &entity.User{
		Id:       uuid.New(),
		Email:    fmt.Sprintf("it-%s-%s@example.com", role, uuid.New().String()[:8]),
		FullName: "Integration " + role,
		Role:     entity.UserRole(role),
		IsActive: true,
	}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	t.Cleanup(func() {
		e.db.Exec("DELETE FROM notifications WHERE user_id = ?", user.Id)
		e.db.Exec("DELETE FROM user_preferences WHERE user_id = ?", user.Id)
		e.db.Exec("DELETE FROM users WHERE id = ?", user.Id)
	})
	return user
}

func (e *testEnv) createPet(t *testing.T) *dto.ProductResponse {
	t.Helper()
	pet, err := e.products.Create(context.Background(), &dto.CreateProductRequest{
		Name:     "IT Pet " + uuid.New().String()[:8],
		Species:  "Dog",
		Gender:   "female",
		Price:    50,
		Category: "dogs",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		e.db.Exec("DELETE FROM adoption_requests WHERE product_id = ?", pet.Id)
		e.db.Exec("DELETE FROM favorites WHERE product_id = ?", pet.Id)
		e.db.Exec("DELETE FROM products WHERE id = ?", pet.Id)
	})
	return pet
}

func TestAdoptionRequestDuplicateRules(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	user := e.createUser(t, "customer")
	pet := e.createPet(t)

	req := &dto.CreateAdoptionRequest{ProductId: pet.Id}

	first, err := e.adoptions.Create(ctx, user.Id, req)
	require.NoError(t, err)
	assert.Equal(t, "pending", first.Status)
	assert.Equal(t, user.FullName, first.CustomerName)

	// Second request while pending is rejected
	_, err = e.adoptions.Create(ctx, user.Id, req)
	assert.ErrorIs(t, err, service.ErrDuplicateRequest)

	// After a rejection the user can re-apply
	uow := e.uowFactory.NewUnitOfWork(ctx)
	require.NoError(t, uow.AdoptionRepository().UpdateStatus(ctx, first.Id, entity.AdoptionStatusRejected))

	second, err := e.adoptions.Create(ctx, user.Id, req)
	require.NoError(t, err)
	assert.Equal(t, "pending", second.Status)
	assert.NotEqual(t, first.Id, second.Id)
}

func TestAdoptionRequestMissingPet(t *testing.T) {
	e := setup(t)

	user := e.createUser(t, "customer")
	_, err := e.adoptions.Create(context.Background(), user.Id, &dto.CreateAdoptionRequest{ProductId: uuid.New()})
	assert.ErrorIs(t, err, service.ErrPetNotFound)
}

func TestAdoptionAdminFanOut(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	admin1 := e.createUser(t, "admin")
	admin2 := e.createUser(t, "admin")
	customer := e.createUser(t, "customer")
	pet := e.createPet(t)

	_, err := e.adoptions.Create(ctx, customer.Id, &dto.CreateAdoptionRequest{ProductId: pet.Id})
	require.NoError(t, err)

	for _, admin := range []*entity.User{admin1, admin2} {
		notifs, _, err := e.notifService.GetNotifications(ctx, admin.Id, 50, 0)
		require.NoError(t, err)

		found := 0
		for _, n := range notifs {
			if n.Title == "New Adoption Request" {
				found++
				assert.Contains(t, n.Message, customer.FullName)
				assert.Contains(t, n.Message, pet.Name)
			}
		}
		assert.Equal(t, 1, found, "each admin gets exactly one notification")
	}
}

func TestFavoriteLifecycle(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	user := e.createUser(t, "customer")
	pet := e.createPet(t)

	fav, err := e.favorites.Add(ctx, user.Id, &dto.AddFavoriteRequest{ProductId: pet.Id})
	require.NoError(t, err)

	// Duplicate add is a conflict
	_, err = e.favorites.Add(ctx, user.Id, &dto.AddFavoriteRequest{ProductId: pet.Id})
	assert.ErrorIs(t, err, service.ErrAlreadyFavorite)

	// Another user cannot remove it
	other := e.createUser(t, "customer")
	err = e.favorites.Remove(ctx, other.Id, fav.Id)
	assert.ErrorIs(t, err, service.ErrFavoriteNotFound)

	// Owner removal succeeds once
	require.NoError(t, e.favorites.Remove(ctx, user.Id, fav.Id))
	err = e.favorites.Remove(ctx, user.Id, fav.Id)
	assert.ErrorIs(t, err, service.ErrFavoriteNotFound)
}

func TestProductDeleteCascadesRequests(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	userA := e.createUser(t, "customer")
	userB := e.createUser(t, "customer")
	pet := e.createPet(t)

	_, err := e.adoptions.Create(ctx, userA.Id, &dto.CreateAdoptionRequest{ProductId: pet.Id})
	require.NoError(t, err)
	_, err = e.adoptions.Create(ctx, userB.Id, &dto.CreateAdoptionRequest{ProductId: pet.Id})
	require.NoError(t, err)

	require.NoError(t, e.products.Delete(ctx, pet.Id))

	var count int64
	e.db.Table("adoption_requests").Where("product_id = ?", pet.Id).Count(&count)
	assert.Equal(t, int64(0), count)

	_, err = e.products.GetById(ctx, pet.Id)
	assert.ErrorIs(t, err, service.ErrPetNotFound)
}

func TestMarkNotificationReadIdempotent(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	user := e.createUser(t, "customer")
	require.NoError(t, e.notifService.Notify(ctx, user.Id, "info", "Test", "Hello", nil, nil))

	notifs, _, err := e.notifService.GetNotifications(ctx, user.Id, 10, 0)
	require.NoError(t, err)
	require.NotEmpty(t, notifs)
	id := notifs[0].ID

	// First and second mark-read both succeed
	assert.NoError(t, e.notifService.MarkAsRead(ctx, id, user.Id))
	assert.NoError(t, e.notifService.MarkAsRead(ctx, id, user.Id))

	// Not the owner's notification
	other := e.createUser(t, "customer")
	err = e.notifService.MarkAsRead(ctx, id, other.Id)
	assert.ErrorIs(t, err, service.ErrNotificationNotFound)

	count, err := e.notifService.GetUnreadCount(ctx, user.Id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestPreferencesLazyCreate(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	user := e.createUser(t, "customer")

	prefs, err := e.preferences.Get(ctx, user.Id)
	require.NoError(t, err)
	assert.True(t, prefs.Email)
	assert.True(t, prefs.Push)
	assert.False(t, prefs.Sms)
	assert.False(t, prefs.Marketing)
	assert.True(t, prefs.AdoptionUpdates)
	assert.True(t, prefs.MessageAlerts)

	// Only one row exists after repeated reads
	_, err = e.preferences.Get(ctx, user.Id)
	require.NoError(t, err)

	var count int64
	e.db.Table("user_preferences").Where("user_id = ?", user.Id).Count(&count)
	assert.Equal(t, int64(1), count)

	// Empty update body is rejected
	_, err = e.preferences.Update(ctx, user.Id, &dto.UpdatePreferencesRequest{})
	assert.ErrorIs(t, err, service.ErrNoFieldsToSet)
}
