// Package telegram posts the run summary to a Telegram chat via the Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const defaultAPIURL = "https://api.telegram.org"

// Notifier sends messages to one chat. It makes single attempts; callers
// wrap Send in retry.Do when they want resilience.
type Notifier struct {
	token  string
	chatID string
	client *http.Client
	apiURL string
}

func New(token, chatID string, client *http.Client) *Notifier {
	return &Notifier{
		token:  token,
		chatID: chatID,
		client: client,
		apiURL: defaultAPIURL,
	}
}

// Send posts one plain-text message to the configured chat.
func (n *Notifier) Send(ctx context.Context, text string) error {
	payload := map[string]interface{}{
		"chat_id":                  n.chatID,
		"text":                     text,
		"disable_web_page_preview": true,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.apiURL, n.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("telegram request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Include a snippet of the API response for diagnostics.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("telegram API error: status %d: %s", resp.StatusCode, snippet)
	}
	return nil
}
