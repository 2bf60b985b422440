package analysis

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BhargaviBathini/food-allergy/internal/auth"
	"github.com/BhargaviBathini/food-allergy/internal/history"
	"github.com/BhargaviBathini/food-allergy/internal/llm"
	"github.com/BhargaviBathini/food-allergy/internal/logger"
)

// UserStore is the slice of the account repository the analysis flow needs.
type UserStore interface {
	FindByID(ctx context.Context, id string) (*auth.User, error)
}

// Archiver copies analyzed images to object storage. Optional.
type Archiver interface {
	UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error)
}

type Service struct {
	users    UserStore
	client   llm.Client
	history  *history.Service
	archiver Archiver
}

// NewService wires the analysis flow. archiver may be nil; archival is
// then skipped.
func NewService(users UserStore, client llm.Client, historyService *history.Service, archiver Archiver) *Service {
	return &Service{
		users:    users,
		client:   client,
		history:  historyService,
		archiver: archiver,
	}
}

// AnalyzeFood runs the full pipeline for one uploaded image: load the
// user's declared allergies, ask the model about the image, parse the
// reply, cross-reference allergens, persist the record, and return the
// verdict. Provider failures propagate; parser failures do not.
func (s *Service) AnalyzeFood(ctx context.Context, userID string, imageData []byte) (*Result, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	imageBase64 := base64.StdEncoding.EncodeToString(imageData)

	rawReply, err := s.client.AnalyzeFoodImage(ctx, imageBase64, user.Allergies)
	if err != nil {
		return nil, err
	}

	parsed := llm.ParseFoodAnalysis(rawReply)

	matched := MatchAllergens(parsed.AllergensDetected, user.Allergies)
	safeToEat := len(matched) == 0

	result := &Result{
		FoodName:          parsed.FoodName,
		Ingredients:       parsed.Ingredients,
		AllergensDetected: matched,
		SafeToEat:         safeToEat,
		Confidence:        parsed.Confidence,
		WarningMessage:    WarningMessage(matched),
	}

	analysisID := uuid.New().String()

	record := &history.AnalysisRecord{
		AnalysisID:        analysisID,
		UserID:            userID,
		FoodName:          result.FoodName,
		Ingredients:       result.Ingredients,
		AllergensDetected: result.AllergensDetected,
		SafeToEat:         result.SafeToEat,
		ImageBase64:       imageBase64,
		ImageURL:          s.archiveImage(ctx, userID, analysisID, imageData),
		AnalyzedAt:        time.Now().UTC(),
	}

	if err := s.history.Record(ctx, record); err != nil {
		return nil, err
	}

	return result, nil
}

// archiveImage mirrors the image to object storage when configured.
// Failures are logged, never fatal to the analysis.
func (s *Service) archiveImage(ctx context.Context, userID, analysisID string, imageData []byte) string {
	if s.archiver == nil {
		return ""
	}

	key := fmt.Sprintf("analyses/%s/%s.jpg", userID, analysisID)
	url, err := s.archiver.UploadBytes(ctx, key, imageData, "image/jpeg")
	if err != nil {
		logger.Warn("image archive failed",
			zap.String("analysis_id", analysisID),
			zap.Error(err),
		)
		return ""
	}
	return url
}
