package service

import (
	"errors"
	"testing"

	"github.com/inkwell-next/internal/models"
	"github.com/inkwell-next/internal/repository"

	"gorm.io/gorm"
)

func newUserServiceTest(t *testing.T) (*UserService, *gorm.DB) {
	t.Helper()
	db := setupServiceTest(t)
	articleRepo := repository.NewArticleRepository(db)
	svc := NewUserService(
		repository.NewUserRepository(db),
		repository.NewProfileRepository(db),
		articleRepo,
		NewArticleService(articleRepo),
	)
	return svc, db
}

func TestRegisterCreatesUserWithProfile(t *testing.T) {
	svc, _ := newUserServiceTest(t)

	user, profile, err := svc.Register(RegisterInput{
		Email:   "ada@example.com",
		Name:    "Ada",
		Address: "1 Analytical Way",
		Phone:   "555-0100",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if user.ID == 0 || user.Email != "ada@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if profile.UserID != user.ID || profile.Name != "Ada" {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	got, err := svc.Get(user.ID)
	if err != nil {
		t.Fatalf("get user failed: %v", err)
	}
	if got.Profile == nil || got.Profile.Name != "Ada" {
		t.Fatalf("expected profile expanded, got %+v", got.Profile)
	}
}

func TestRegisterRejectsEmptyEmail(t *testing.T) {
	svc, _ := newUserServiceTest(t)

	_, _, err := svc.Register(RegisterInput{Email: "   "})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError got %v", err)
	}
	if verr.Field != "email" {
		t.Fatalf("field want email got %s", verr.Field)
	}
}

func TestRegisterDuplicateEmailRollsBack(t *testing.T) {
	svc, db := newUserServiceTest(t)

	if _, _, err := svc.Register(RegisterInput{Email: "dup@example.com", Name: "First"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, _, err := svc.Register(RegisterInput{Email: "dup@example.com", Name: "Second"})
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("want ErrEmailTaken got %v", err)
	}

	var users, profiles int64
	if err := db.Model(&models.User{}).Count(&users).Error; err != nil {
		t.Fatalf("count users failed: %v", err)
	}
	if err := db.Model(&models.Profile{}).Count(&profiles).Error; err != nil {
		t.Fatalf("count profiles failed: %v", err)
	}
	if users != 1 || profiles != 1 {
		t.Fatalf("failed register must leave no rows, users=%d profiles=%d", users, profiles)
	}
}

func TestCreateBatchUsers(t *testing.T) {
	svc, _ := newUserServiceTest(t)

	count, err := svc.CreateBatch([]UserInput{
		{Email: "a@example.com"},
		{Email: "b@example.com"},
	})
	if err != nil {
		t.Fatalf("create batch failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("count want 2 got %d", count)
	}

	_, err = svc.CreateBatch([]UserInput{{Email: ""}})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError got %v", err)
	}
}

func TestDependentOperationsRequireUser(t *testing.T) {
	svc, _ := newUserServiceTest(t)

	if _, err := svc.Get(77); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("get want ErrUserNotFound got %v", err)
	}
	if _, err := svc.CreateProfile(77, ProfileInput{Name: "x"}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("create profile want ErrUserNotFound got %v", err)
	}
	if _, err := svc.ListProfiles(77); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("list profiles want ErrUserNotFound got %v", err)
	}
	if _, err := svc.CreateArticles(77, []ArticleInput{{Title: "t"}}); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("create articles want ErrUserNotFound got %v", err)
	}
	if _, err := svc.ListArticles(77); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("list articles want ErrUserNotFound got %v", err)
	}
}

func TestCreateArticlesStampsAuthor(t *testing.T) {
	svc, _ := newUserServiceTest(t)

	user, _, err := svc.Register(RegisterInput{Email: "writer@example.com", Name: "Writer"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	count, err := svc.CreateArticles(user.ID, []ArticleInput{
		{Title: "first", State: models.ArticleStatePublished},
		{Title: "second"},
	})
	if err != nil {
		t.Fatalf("create articles failed: %v", err)
	}
	if count != 2 {
		t.Fatalf("count want 2 got %d", count)
	}

	articles, err := svc.ListArticles(user.ID)
	if err != nil {
		t.Fatalf("list articles failed: %v", err)
	}
	if len(articles) != 2 {
		t.Fatalf("articles want 2 got %d", len(articles))
	}
	for _, article := range articles {
		if article.UserID == nil || *article.UserID != user.ID {
			t.Fatalf("article not stamped with author: %+v", article)
		}
	}
}
