package openai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/getpawsy/pawsy/internal/domain"
	"github.com/getpawsy/pawsy/internal/domain/product"
)

// chatResponse mirrors the OpenAI chat completions response shape.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func chatServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Errorf("unexpected auth header: %s", r.Header.Get("Authorization"))
		}

		var resp chatResponse
		resp.Choices = make([]struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
		}, 1)
		resp.Choices[0].Message.Role = "assistant"
		resp.Choices[0].Message.Content = content

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func testProduct() product.Product {
	return product.Reconstruct(product.Fields{
		ID: "1", Title: "Squeaky Dog Ball", Description: "A bouncy ball.",
		Category: "Dog Toys", Price: 8.99, Tags: []string{"dog", "toy"},
	})
}

func TestGenerator_Generate(t *testing.T) {
	server := chatServer(t, `{"seo_title": "Squeaky Dog Ball | GetPawsy", "seo_description": "A bouncy squeaky ball dogs love.", "bullet_points": ["Durable", "Squeaky", "Safe"]}`)
	defer server.Close()

	gen := NewGenerator(&Config{
		APIKey: "test-key", BaseURL: server.URL, Model: "test-model", Logger: zap.NewNop(),
	})

	p := testProduct()
	content, err := gen.Generate(context.Background(), &p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if content.Title != "Squeaky Dog Ball | GetPawsy" {
		t.Errorf("title = %q", content.Title)
	}
	if len(content.Bullets) != 3 {
		t.Errorf("bullets = %v", content.Bullets)
	}
}

func TestGenerator_StripsCodeFences(t *testing.T) {
	fenced := "```json\n{\"seo_title\": \"T\", \"seo_description\": \"D\", \"bullet_points\": []}\n```"
	server := chatServer(t, fenced)
	defer server.Close()

	gen := NewGenerator(&Config{
		APIKey: "test-key", BaseURL: server.URL, Model: "test-model", Logger: zap.NewNop(),
	})

	p := testProduct()
	content, err := gen.Generate(context.Background(), &p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if content.Title != "T" || content.Description != "D" {
		t.Errorf("content = %+v", content)
	}
}

func TestGenerator_InvalidJSONWrapsProviderError(t *testing.T) {
	server := chatServer(t, "Sorry, I cannot do that.")
	defer server.Close()

	gen := NewGenerator(&Config{
		APIKey: "test-key", BaseURL: server.URL, Model: "test-model", Logger: zap.NewNop(),
	})

	p := testProduct()
	_, err := gen.Generate(context.Background(), &p)
	if !errors.Is(err, domain.ErrContentProvider) {
		t.Errorf("err = %v, want ErrContentProvider", err)
	}
}

func TestGenerator_MissingFieldsWrapsProviderError(t *testing.T) {
	server := chatServer(t, `{"seo_title": "", "seo_description": ""}`)
	defer server.Close()

	gen := NewGenerator(&Config{
		APIKey: "test-key", BaseURL: server.URL, Model: "test-model", Logger: zap.NewNop(),
	})

	p := testProduct()
	_, err := gen.Generate(context.Background(), &p)
	if !errors.Is(err, domain.ErrContentProvider) {
		t.Errorf("err = %v, want ErrContentProvider", err)
	}
}

func TestGenerator_APIErrorWrapsProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": {"message": "rate limited", "type": "rate_limit"}}`, http.StatusTooManyRequests)
	}))
	defer server.Close()

	gen := NewGenerator(&Config{
		APIKey: "test-key", BaseURL: server.URL, Model: "test-model", Logger: zap.NewNop(),
	})

	p := testProduct()
	_, err := gen.Generate(context.Background(), &p)
	if !errors.Is(err, domain.ErrContentProvider) {
		t.Errorf("err = %v, want ErrContentProvider", err)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"{\"a\": 1}", "{\"a\": 1}"},
		{"```json\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"```\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"  {\"a\": 1}  ", "{\"a\": 1}"},
	}
	for _, tc := range tests {
		if got := stripFences(tc.in); got != tc.want {
			t.Errorf("stripFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
