package analysis

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/BhargaviBathini/food-allergy/internal/auth"
	"github.com/BhargaviBathini/food-allergy/internal/history"
	"github.com/BhargaviBathini/food-allergy/internal/llm"
)

type stubLLMClient struct {
	reply        string
	err          error
	gotAllergies []string
	gotImage     string
}

func (s *stubLLMClient) AnalyzeFoodImage(_ context.Context, imageBase64 string, userAllergies []string) (string, error) {
	s.gotImage = imageBase64
	s.gotAllergies = userAllergies
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestUser(t *testing.T, repo *auth.InMemoryUserRepository, allergies []string) *auth.User {
	t.Helper()

	user := &auth.User{
		ID:        "user-1",
		Email:     "test@example.com",
		Password:  "hashed",
		Allergies: allergies,
	}
	if err := repo.Insert(context.Background(), user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return user
}

func TestAnalyzeFoodEndToEnd(t *testing.T) {
	userRepo := auth.NewInMemoryUserRepository()
	historyRepo := history.NewInMemoryRepository()
	user := newTestUser(t, userRepo, []string{"Nuts", "Dairy"})

	client := &stubLLMClient{
		reply: `{"food_name":"Peanut Sandwich","ingredients":["Bread","Peanuts","Butter"],` +
			`"allergens_detected":["Peanuts","Dairy","Bread"],"confidence":0.9}`,
	}

	service := NewService(userRepo, client, history.NewService(historyRepo), nil)

	result, err := service.AnalyzeFood(context.Background(), user.ID, []byte("fake image bytes"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(result.AllergensDetected, []string{"Peanuts", "Dairy"}) {
		t.Fatalf("expected matched [Peanuts Dairy], got %v", result.AllergensDetected)
	}
	if result.SafeToEat {
		t.Fatal("expected safe_to_eat false")
	}
	if !strings.Contains(result.WarningMessage, "Peanuts") || !strings.Contains(result.WarningMessage, "Dairy") {
		t.Fatalf("warning should mention both matched terms, got %q", result.WarningMessage)
	}
	if result.Confidence != 0.9 {
		t.Fatalf("expected confidence 0.9, got %v", result.Confidence)
	}

	// declared allergies were forwarded to the provider as hints
	if !reflect.DeepEqual(client.gotAllergies, []string{"Nuts", "Dairy"}) {
		t.Fatalf("expected user allergies forwarded, got %v", client.gotAllergies)
	}

	// a history record was appended with the filtered allergen list
	records, err := historyRepo.ListByUser(context.Background(), user.ID, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 history record, got %d", len(records))
	}
	rec := records[0]
	if !reflect.DeepEqual(rec.AllergensDetected, []string{"Peanuts", "Dairy"}) {
		t.Fatalf("record must store the filtered list, got %v", rec.AllergensDetected)
	}
	if rec.SafeToEat {
		t.Fatal("record should carry safe_to_eat false")
	}
	if rec.ImageBase64 != client.gotImage {
		t.Fatal("record should store the same encoded image sent to the provider")
	}
	if rec.AnalyzedAt.IsZero() {
		t.Fatal("record should carry an analysis timestamp")
	}
}

func TestAnalyzeFoodSafeVerdict(t *testing.T) {
	userRepo := auth.NewInMemoryUserRepository()
	user := newTestUser(t, userRepo, []string{"Shellfish"})

	client := &stubLLMClient{
		reply: `{"food_name":"Fruit Salad","ingredients":["Apple","Banana"],"allergens_detected":[],"confidence":0.95}`,
	}
	service := NewService(userRepo, client, history.NewService(history.NewInMemoryRepository()), nil)

	result, err := service.AnalyzeFood(context.Background(), user.ID, []byte("img"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.SafeToEat {
		t.Fatal("expected safe_to_eat true")
	}
	if result.WarningMessage != "" {
		t.Fatalf("expected no warning, got %q", result.WarningMessage)
	}
}

func TestAnalyzeFoodUnknownUser(t *testing.T) {
	service := NewService(
		auth.NewInMemoryUserRepository(),
		&stubLLMClient{reply: "{}"},
		history.NewService(history.NewInMemoryRepository()),
		nil,
	)

	_, err := service.AnalyzeFood(context.Background(), "no-such-user", []byte("img"))
	if !errors.Is(err, auth.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAnalyzeFoodProviderErrorPropagates(t *testing.T) {
	userRepo := auth.NewInMemoryUserRepository()
	user := newTestUser(t, userRepo, []string{"Nuts"})

	historyRepo := history.NewInMemoryRepository()
	client := &stubLLMClient{err: fmt.Errorf("%w: gemini api error: 503", llm.ErrProvider)}
	service := NewService(userRepo, client, history.NewService(historyRepo), nil)

	_, err := service.AnalyzeFood(context.Background(), user.ID, []byte("img"))
	if !errors.Is(err, llm.ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}

	// a failed provider call must not leave a history record behind
	records, _ := historyRepo.ListByUser(context.Background(), user.ID, 50)
	if len(records) != 0 {
		t.Fatalf("expected no history records, got %d", len(records))
	}
}

func TestAnalyzeFoodMalformedReplyUsesSentinel(t *testing.T) {
	userRepo := auth.NewInMemoryUserRepository()
	user := newTestUser(t, userRepo, []string{"Nuts"})

	client := &stubLLMClient{reply: "I could not make sense of this image."}
	service := NewService(userRepo, client, history.NewService(history.NewInMemoryRepository()), nil)

	result, err := service.AnalyzeFood(context.Background(), user.ID, []byte("img"))
	if err != nil {
		t.Fatalf("malformed inner reply must not fail the request: %v", err)
	}
	if result.FoodName != "Unknown Food" {
		t.Fatalf("expected sentinel food name, got %q", result.FoodName)
	}
	if result.Confidence != 0.5 {
		t.Fatalf("expected sentinel confidence 0.5, got %v", result.Confidence)
	}
	if !result.SafeToEat {
		t.Fatal("sentinel record has no allergens, verdict must be safe")
	}
}
