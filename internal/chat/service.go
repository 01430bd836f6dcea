// internal/chat/service.go
package chat

import (
	"context"
	"strings"
	"time"

	"ekthaa-chatbot/internal/catalog"
	"ekthaa-chatbot/internal/common/logger"
	"ekthaa-chatbot/internal/common/metrics"
	"ekthaa-chatbot/internal/match"
	"ekthaa-chatbot/internal/models"
	"ekthaa-chatbot/internal/session"
)

// Catalog is the read surface the service needs from storage.
type Catalog interface {
	Products(ctx context.Context, f catalog.ProductFilter) ([]models.Product, error)
	Businesses(ctx context.Context, category string) ([]models.Business, error)
}

// IntentExtractor turns a raw message into a parsed intent. It never fails;
// implementations degrade internally.
type IntentExtractor interface {
	Extract(ctx context.Context, message string) models.ParsedIntent
}

// Completer generates free-form replies (apologies, suggestions). Optional;
// a nil Completer makes the service fully deterministic.
type Completer interface {
	Complete(ctx context.Context, system, user string, temperature float64, maxTokens int) (string, error)
}

const (
	apologyTemperature = 0.7
	apologyMaxTokens   = 200
)

// Service runs the chat pipeline: extract, merge context, correct typos,
// query the catalog and compose the reply.
type Service struct {
	catalog    Catalog
	sessions   session.Store
	extractor  IntentExtractor
	completer  Completer
	products   *match.Matcher
	categories *match.Matcher
	logger     logger.Logger
}

func NewService(cat Catalog, sessions session.Store, extractor IntentExtractor, completer Completer, log logger.Logger) *Service {
	return &Service{
		catalog:    cat,
		sessions:   sessions,
		extractor:  extractor,
		completer:  completer,
		products:   match.NewMatcher(catalog.KnownProducts),
		categories: match.NewMatcher(catalog.KnownCategories),
		logger:     log.WithFields(map[string]interface{}{"component": "chat"}),
	}
}

func (s *Service) Chat(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	start := time.Now()

	message := strings.TrimSpace(req.Message)
	userID := req.UserID
	if userID == "" {
		userID = models.AnonymousUser
	}

	parsed := s.extractor.Extract(ctx, message)

	prev, err := s.sessions.Get(ctx, userID)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load conversation context")
		prev = models.ParsedIntent{}
	}
	merged := parsed.Merge(prev)

	// Context keeps the user's own words; typo correction applies per query.
	if err := s.sessions.Put(ctx, userID, merged); err != nil {
		s.logger.WithError(err).Warn("Failed to save conversation context")
	}

	resp, err := s.dispatch(ctx, message, merged)
	if err != nil {
		return nil, err
	}

	metrics.ChatRequests.WithLabelValues(string(resp.Intent)).Inc()
	metrics.ChatDuration.Observe(time.Since(start).Seconds())

	s.logger.WithFields(map[string]interface{}{
		"user_id":  userID,
		"intent":   resp.Intent,
		"products": len(resp.Products),
	}).Info("Chat request handled")

	return resp, nil
}

func (s *Service) dispatch(ctx context.Context, message string, intent models.ParsedIntent) (*models.ChatResponse, error) {
	switch intent.Intent {
	case models.IntentProductSearch, models.IntentPriceFilter:
		return s.productSearch(ctx, message, intent)
	case models.IntentCategorySearch:
		return s.categorySearch(ctx, intent)
	case models.IntentBusinessFinder:
		return s.businessFinder(ctx, intent)
	default:
		return &models.ChatResponse{
			Response: fallbackMessage,
			Products: []models.Product{},
			Intent:   models.IntentFallback,
		}, nil
	}
}

func (s *Service) productSearch(ctx context.Context, message string, intent models.ParsedIntent) (*models.ChatResponse, error) {
	intent.ProductName = s.products.Best(intent.ProductName)
	intent.Category = s.categories.Best(intent.Category)

	products, err := s.catalog.Products(ctx, catalog.ProductFilter{
		Name:     intent.ProductName,
		Category: intent.Category,
		MaxPrice: intent.MaxPrice,
	})
	if err != nil {
		return nil, err
	}

	if len(products) == 0 {
		return &models.ChatResponse{
			Response: s.apologize(ctx, message, intent),
			Products: []models.Product{},
			Intent:   models.IntentNoResult,
		}, nil
	}

	var response string
	switch {
	case intent.MaxPrice != nil && intent.ProductName == "" && intent.Category == "":
		response = composeBudgetBrowse(products, *intent.MaxPrice)
	case len(products) == 1 && intent.WantsSeller:
		response = composeSellerCard(products[0])
	case len(products) == 1:
		response = composeSingleProduct(products[0])
	default:
		response = composeProductList(products)
	}

	return &models.ChatResponse{
		Response: response,
		Products: products,
		Intent:   intent.Intent,
	}, nil
}

func (s *Service) categorySearch(ctx context.Context, intent models.ParsedIntent) (*models.ChatResponse, error) {
	intent.Category = s.categories.Best(intent.Category)
	if intent.Category == "" {
		intent.Category = models.CategoryVegetables
	}

	businesses, err := s.catalog.Businesses(ctx, intent.Category)
	if err != nil {
		return nil, err
	}
	if len(businesses) == 0 {
		return &models.ChatResponse{
			Response: noBusinessesMessage,
			Products: []models.Product{},
			Intent:   models.IntentNoResult,
		}, nil
	}

	products, err := s.catalog.Products(ctx, catalog.ProductFilter{Category: intent.Category})
	if err != nil {
		return nil, err
	}

	return &models.ChatResponse{
		Response:   composeCategoryOverview(businesses[0], intent.Category, products),
		Products:   products,
		Businesses: businesses,
		Intent:     intent.Intent,
	}, nil
}

func (s *Service) businessFinder(ctx context.Context, intent models.ParsedIntent) (*models.ChatResponse, error) {
	businesses, err := s.catalog.Businesses(ctx, intent.BusinessCategory)
	if err != nil {
		return nil, err
	}
	if len(businesses) == 0 {
		// Nothing in the requested category; show every store instead.
		businesses, err = s.catalog.Businesses(ctx, "")
		if err != nil {
			return nil, err
		}
	}

	return &models.ChatResponse{
		Response:   composeBusinessList(businesses, intent.BusinessCategory),
		Products:   []models.Product{},
		Businesses: businesses,
		Intent:     intent.Intent,
	}, nil
}

// apologize asks the LLM for a conversational no-result reply, degrading to
// the fixed template when that fails.
func (s *Service) apologize(ctx context.Context, message string, intent models.ParsedIntent) string {
	if s.completer != nil {
		reply, err := s.completer.Complete(ctx, apologySystemPrompt,
			buildApologyUserPrompt(message, intent), apologyTemperature, apologyMaxTokens)
		if err == nil {
			return reply
		}
		s.logger.WithError(err).Warn("LLM apology failed, using fixed reply")
		metrics.LLMFallbacks.WithLabelValues("apology").Inc()
	}
	return composeApology(intent)
}
