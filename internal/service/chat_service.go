package service

import (
	"askadam/fitness-assistant/internal/actions"
	"askadam/fitness-assistant/internal/gemini"
	"askadam/fitness-assistant/internal/repository"
	"askadam/fitness-assistant/internal/store"
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shown instead of raising when the model call fails or the response is
// degenerate: the chat keeps working even when the side channel does not.
const (
	llmFailureMessage = "I'm sorry, I couldn't process your request. Please try again."
	emptyReplyMessage = "Hmm, I didn't come up with anything useful there. Could you rephrase that?"
)

// LLMClient is the slice of the Gemini client the chat service needs.
type LLMClient interface {
	Chat(ctx context.Context, system string, history []gemini.Message, message string) (string, error)
}

// StoreProvider hands out per-user store adapters.
type StoreProvider interface {
	WorkoutStore(userID string) store.WorkoutStore
	ProfileStore(userID string) store.ProfileStore
}

type ChatService interface {
	// SendMessage forwards the user's message (plus profile and workout
	// context) to the model, applies any actions embedded in the reply,
	// and returns the cleaned conversational text. userID may be empty
	// for signed-out sessions.
	SendMessage(ctx context.Context, userID string, history []gemini.Message, message string) (string, error)
}

type chatService struct {
	llm      LLMClient
	stores   StoreProvider
	profiles repository.ProfileRepository
}

// NewChatService creates a new chat service. profiles may be nil when no
// database is configured; profile context is then skipped.
func NewChatService(llm LLMClient, stores StoreProvider, profiles repository.ProfileRepository) ChatService {
	return &chatService{llm: llm, stores: stores, profiles: profiles}
}

func (s *chatService) SendMessage(ctx context.Context, userID string, history []gemini.Message, message string) (string, error) {
	workouts := s.stores.WorkoutStore(userID)

	// Context for the model: profile preferences and the current split.
	// Either failing to load degrades personalization, not the chat.
	profile := s.loadProfile(ctx, userID)
	split, err := workouts.Load(ctx)
	if err != nil {
		log.Printf("WARN: Could not load workout split for chat context: %v", err)
		split = nil
	}

	system := gemini.BuildSystemPrompt(profile, split)
	raw, err := s.llm.Chat(ctx, system, history, message)
	if err != nil {
		log.Printf("ERROR: Gemini call failed: %v", err)
		return llmFailureMessage, nil
	}

	result, err := actions.Scan(raw)
	if err != nil {
		if errors.Is(err, actions.ErrEmptyResponse) {
			// Degenerate model response: fall back to an explicit
			// message and apply no mutations.
			log.Printf("WARN: Model response contained no conversational text")
			return emptyReplyMessage, nil
		}
		return llmFailureMessage, nil
	}

	decoded := actions.DecodeAll(result.Raw)
	if len(decoded) > 0 {
		dispatcher := actions.NewDispatcher(workouts, s.stores.ProfileStore(userID))
		dispatcher.Dispatch(ctx, decoded)
	}

	return result.TextResponse, nil
}

func (s *chatService) loadProfile(ctx context.Context, userID string) map[string]any {
	if userID == "" || s.profiles == nil {
		return nil
	}
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		log.Printf("WARN: Invalid user id %q for profile context: %v", userID, err)
		return nil
	}
	prefs, err := s.profiles.GetPreferences(ctx, oid)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			log.Printf("WARN: Could not load preferences for chat context: %v", err)
		}
		return nil
	}
	return prefs
}
