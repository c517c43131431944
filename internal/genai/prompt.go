package genai

import (
	"fmt"
	"strings"
)

// The prompts lean hard on instruction discipline: state the item count,
// enumerate the exact field names, and demand a bare JSON array. Without
// the final instruction the model reliably wraps the JSON in prose.

const (
	marketNewsCount = 15
	stockNewsCount  = 10
	recommendCount  = 10
)

func NewsPrompt(market, symbol string) string {
	if symbol != "" {
		return fmt.Sprintf(`Generate %d current financial news items about %s stock. Include both positive and negative news if applicable.

Format your response as a valid JSON array of objects with these fields ONLY:
- title: A catchy headline about %s
- publisher: A realistic financial news source
- content: A short 1-paragraph summary of the news

IMPORTANT: Return ONLY valid JSON data with no other text.`, stockNewsCount, symbol, symbol)
	}

	specifier := "global stock markets"
	if strings.EqualFold(market, "india") {
		specifier = "Indian stock market"
	}
	return fmt.Sprintf(`Generate %d current financial news items about %s. Include a mix of market trends, economic indicators, and company-specific news.

Format your response as a valid JSON array of objects with these fields ONLY:
- title: A catchy headline
- publisher: A realistic financial news source
- content: A short 1-paragraph summary of the news

IMPORTANT: Return ONLY valid JSON data with no other text.`, marketNewsCount, specifier)
}

func RecommendationsPrompt() string {
	return fmt.Sprintf(`As a financial expert, provide me with a list of %d stock recommendations based on past performance and future market outlook.

For each stock, include:
1. Symbol (ticker)
2. Company name
3. Recommendation (Strong Buy, Buy, Hold, Sell, or Strong Sell)
4. Current price (approximate in USD, or INR for Indian stocks)
5. Target price (approximate in USD, or INR for Indian stocks)
6. Potential growth percentage
7. Brief rationale for the recommendation (2-3 sentences)
8. Risk level (Low, Medium, High)
9. Sector
10. Time horizon (Short-term, Medium-term, Long-term)

Include a mix of US and Indian stocks. For Indian stocks, use the .NS suffix for NSE listings.

Format the response as a JSON array with the following structure:
[
  {
    "symbol": "AAPL",
    "name": "Apple Inc.",
    "recommendation": "Buy",
    "currentPrice": 170.50,
    "targetPrice": 200.00,
    "potentialGrowth": 17.3,
    "rationale": "Strong ecosystem and services growth with potential new product categories.",
    "riskLevel": "Low",
    "sector": "Technology",
    "timeHorizon": "Long-term"
  }
]

IMPORTANT: Return ONLY the JSON array with no other text.`, recommendCount)
}
