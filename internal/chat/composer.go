// internal/chat/composer.go
package chat

import (
	"fmt"
	"strings"

	"ekthaa-chatbot/internal/models"
)

const (
	fallbackMessage = "I can help you find grocery/vegetable products. Try: 'Show me rice under 150' or 'Grocery stores near me'."

	noBusinessesMessage = "No businesses found in this category."
)

func composeBudgetBrowse(products []models.Product, maxPrice int) string {
	lines := make([]string, 0, len(products))
	for i, p := range products {
		lines = append(lines, fmt.Sprintf("%d. %s - Rs.%d/%s\n%s, %s",
			i+1, p.Name, p.Price, p.Unit, p.Business.Name, models.Locality(p.Business.Address)))
	}
	header := fmt.Sprintf("Found %d products under Rs.%d:\n", len(products), maxPrice)
	return header + strings.Join(lines, "\n")
}

// composeSellerCard answers "who sells X" with the full store address.
func composeSellerCard(p models.Product) string {
	return fmt.Sprintf("%s is available at:\n%s - Rs.%d/%s\n%s\n%s\nPhone: %s",
		p.Name, p.Name, p.Price, p.Unit, p.Business.Name, p.Business.Address, p.Business.Phone)
}

func composeSingleProduct(p models.Product) string {
	return fmt.Sprintf("Found 1 product:\n%s - Rs.%d/%s\nAvailable at: %s, %s\nCall: %s",
		p.Name, p.Price, p.Unit, p.Business.Name, models.Locality(p.Business.Address), p.Business.Phone)
}

func composeProductList(products []models.Product) string {
	lines := make([]string, 0, len(products))
	for i, p := range products {
		lines = append(lines, fmt.Sprintf("%d. %s - Rs.%d/%s\n%s, %s\nPhone: %s",
			i+1, p.Name, p.Price, p.Unit, p.Business.Name, models.Locality(p.Business.Address), p.Business.Phone))
	}
	header := fmt.Sprintf("Found %d products:\n\n", len(products))
	return header + strings.Join(lines, "\n\n")
}

// composeCategoryOverview profiles the first matching business and lists the
// category products it carries.
func composeCategoryOverview(b models.Business, category string, products []models.Product) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s in %s specializes in %s.\nAvailable products:\n",
		b.Name, models.Locality(b.Address), strings.ToLower(category))
	for _, p := range products {
		if p.Business.Name == b.Name {
			fmt.Fprintf(&sb, "• %s - Rs.%d/%s\n", p.Name, p.Price, p.Unit)
		}
	}
	fmt.Fprintf(&sb, "Address: %s\nPhone: %s", b.Address, b.Phone)
	return strings.TrimSpace(sb.String())
}

func composeBusinessList(businesses []models.Business, category string) string {
	header := fmt.Sprintf("Found %d store(s):\n\n", len(businesses))
	if category != "" {
		header = fmt.Sprintf("Found %d %s stores:\n\n", len(businesses), strings.ToLower(category))
	}

	lines := make([]string, 0, len(businesses))
	for i, b := range businesses {
		lines = append(lines, fmt.Sprintf("%d. %s - %s\nProducts: %s\nPhone: %s",
			i+1, b.Name, models.Locality(b.Address), strings.Join(b.Products, ", "), b.Phone))
	}
	return header + strings.Join(lines, "\n\n")
}

// composeApology is the deterministic no-result reply used when the LLM
// apology is unavailable.
func composeApology(intent models.ParsedIntent) string {
	subject := intent.ProductName
	if subject == "" {
		subject = "that"
	}
	scope := "products"
	if intent.Category != "" {
		scope = strings.ToLower(intent.Category)
	}
	return fmt.Sprintf("Sorry, I couldn't find %s in our database.\nWould you like to see all available %s?",
		subject, scope)
}

const apologySystemPrompt = `You are a helpful product discovery assistant for local stores in Hyderabad.
You have access to a small catalog of grocery and vegetable items.
If the user asks for something not in the catalog, respond politely and suggest what you *do* have.
Keep responses short and conversational.`

func buildApologyUserPrompt(message string, intent models.ParsedIntent) string {
	parts := []string{}
	if intent.ProductName != "" {
		parts = append(parts, "they were looking for: "+intent.ProductName)
	}
	if intent.Category != "" {
		parts = append(parts, "category: "+intent.Category)
	}
	if intent.MaxPrice != nil {
		parts = append(parts, fmt.Sprintf("budget: under Rs.%d", *intent.MaxPrice))
	}

	context := ""
	if len(parts) > 0 {
		context = "Detected intent: " + strings.Join(parts, "; ") + "."
	}
	return fmt.Sprintf("User said: %q. %s Respond helpfully.", message, context)
}
