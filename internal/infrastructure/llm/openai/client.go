// Package openai provides a Narrator implementation using OpenAI.
package openai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/ersonp/fabula/internal/infrastructure/config"
)

const branchTitlePrompt = `You are an expert storyteller naming chapters of a book.
Based on the following sentence, create a short, mystical, and captivating chapter title.
The title should be between 3 and 6 words. Do not use quotation marks.

Sentence: %q

Title:`

const suggestionPrompt = `You are a creative writer contributing to a collaborative, branching story.
The story so far is: %q
Write a single, compelling, and creative next sentence to continue the story.
The sentence should not exceed 150 characters. Do not add any extra text or quotes around the sentence.`

const summaryPrompt = `You are a master storyteller tasked with summarizing a story branch for a reader.
The story text is: %q

Please provide a concise and engaging summary of this story branch. The summary should be
a single paragraph and capture the main atmosphere and key events. Do not add any extra
text, titles, or quotation marks.`

const summaryTitlePrompt = `You are a literary expert crafting a compelling headline for a story summary.
Based on the summary below, write a short, mystical, and engaging title.
The title should be between 2 and 5 words. Do not add any extra text or quotation marks.

Summary: %q

Title:`

// Client implements the Narrator interface using OpenAI.
type Client struct {
	client *openai.Client
	model  string
}

// NewClient creates a new OpenAI narrator client.
func NewClient(cfg config.LLMConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	client := openai.NewClient(cfg.APIKey)

	model := "gpt-4o-mini"
	if cfg.Model != "" {
		model = cfg.Model
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

// BranchTitle names a new branch from its winning sentence.
func (c *Client) BranchTitle(ctx context.Context, sentenceText string) (string, error) {
	return c.complete(ctx, fmt.Sprintf(branchTitlePrompt, sentenceText))
}

// SuggestSentence proposes a next sentence for the given story context.
func (c *Client) SuggestSentence(ctx context.Context, storyText string) (string, error) {
	return c.complete(ctx, fmt.Sprintf(suggestionPrompt, storyText))
}

// PathSummary summarizes the story along one path.
func (c *Client) PathSummary(ctx context.Context, storyText string) (string, error) {
	return c.complete(ctx, fmt.Sprintf(summaryPrompt, storyText))
}

// SummaryTitle writes a headline for a path summary.
func (c *Client) SummaryTitle(ctx context.Context, summary string) (string, error) {
	return c.complete(ctx, fmt.Sprintf(summaryTitlePrompt, summary))
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.8,
	})
	if err != nil {
		return "", fmt.Errorf("calling OpenAI: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	return cleanResponse(resp.Choices[0].Message.Content), nil
}

// cleanResponse trims whitespace and strips surrounding quotes the model
// sometimes adds despite instructions.
func cleanResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.Trim(content, `"`)
	content = strings.Trim(content, "“”")
	return strings.TrimSpace(content)
}
