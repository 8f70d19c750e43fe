package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"go-sales-diary/internal/models"
	"go-sales-diary/internal/reports"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const coachModel = "gemini-2.5-flash"

// Coach wraps the text-generation service behind the quote widget and
// the chat assistant. It never returns an error: every failure path
// (no key, network down, empty answer) degrades to the offline
// responses, because a motivational quote is not worth an error page.
//
// Calls honor ctx, so a request the user has navigated away from is
// cancelled instead of landing stale on screen.
type Coach struct {
	apiKey string
}

func NewCoach(apiKey string) *Coach {
	return &Coach{apiKey: apiKey}
}

// Quote fetches a short motivational one-liner.
func (c *Coach) Quote(ctx context.Context) string {
	if c.apiKey == "" {
		return "Your hard work today is your success tomorrow 💪"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "Your hard work today is your success tomorrow 💪"
	}
	defer client.Close()

	model := client.GenerativeModel(coachModel)
	model.SetMaxOutputTokens(50)

	resp, err := model.GenerateContent(ctx, genai.Text(
		"Generate a short, powerful retail sales motivation quote. Max 15 words. Plain text."))
	if err != nil {
		return "Your hard work today is your success tomorrow 💪"
	}
	if text := firstText(resp); text != "" {
		return text
	}
	return "Success is a journey, not a destination 🚀"
}

// Ask answers a chat message with the user's profile and their ten
// most recent reports as context.
func (c *Coach) Ask(ctx context.Context, user models.UserProfile, sales []models.DailyReport, message string) string {
	if c.apiKey == "" {
		return OfflineResponse(message, user)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return OfflineResponse(message, user)
	}
	defer client.Close()

	recent := append([]models.DailyReport{}, sales...)
	sort.Slice(recent, func(i, j int) bool { return recent[i].Date > recent[j].Date })
	if len(recent) > 10 {
		recent = recent[:10]
	}
	recentJSON, _ := json.Marshal(recent)

	prompt := fmt.Sprintf(`You are an expert Bajaj Electricals Sales Coach.
User: %s (%s)
Monthly Target: ₹%.0f

Tasks:
1. Analyze sales performance
2. Answer Bajaj product questions (Mixers, Geysers, Irons)
3. Give sales closing tips

Rules:
- Plain text only
- Use emojis
- Be concise

Recent Sales:
%s

User Query: %s`, user.Name, user.StoreName, user.MonthlyTarget, recentJSON, message)

	model := client.GenerativeModel(coachModel)
	model.SetMaxOutputTokens(300)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return OfflineResponse(message, user)
	}
	if text := firstText(resp); text != "" {
		return text
	}
	return "Keep pushing, success is close 💪"
}

// OfflineResponse is the rule-based fallback assistant: canned product
// facts and target reminders keyed off words in the question.
func OfflineResponse(query string, user models.UserProfile) string {
	lower := strings.ToLower(query)

	switch {
	case strings.Contains(lower, "hello"), strings.Contains(lower, "hi"):
		return fmt.Sprintf("Hello %s! I am your Offline Sales Assistant ⚡", user.Name)
	case strings.Contains(lower, "mixer"), strings.Contains(lower, "grinder"):
		return "🔹 Bajaj Mixers: 500W–750W motors\n🔹 DuraCut blades\n🔹 5-year motor warranty"
	case strings.Contains(lower, "geyser"), strings.Contains(lower, "heater"):
		return "🚿 Bajaj Geysers: Instant & Storage\n🔹 Glassline tank\n🔹 Swirl Flow technology"
	case strings.Contains(lower, "iron"):
		return "👕 Bajaj Irons: Dry & Steam\n🔹 Non-stick soleplate\n🔹 360° swivel cord"
	case strings.Contains(lower, "target"), strings.Contains(lower, "sales"):
		return fmt.Sprintf("🎯 Monthly Target: ₹%s\nFocus on high-value products like Geysers & OTGs",
			reports.FormatAmount(user.MonthlyTarget))
	}
	return "Offline mode 🌐\nI can help with Mixers, Geysers, Irons & Sales tips 💡"
}

func firstText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return ""
}
