// Package insight produces the assistive text shown on detail pages and in the
// submission form. Every failure resolves to a fixed fallback string.
package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/WuFaChieh/Mostra-exhibition/internal/domain"
)

const (
	FallbackMissingKey  = "缺少 API 金鑰，無法提供 AI 觀點。"
	FallbackEmptyText   = "探索這件傑作，尋找屬於你的意義。"
	FallbackUnavailable = "AI 策展人目前休息中，請稍後再試。"

	FallbackDraftTitleNoKey = "未命名展覽"
	FallbackDraftTitleError = "新展覽草稿"
	FallbackDraftTitleEmpty = "新視野：藝術探索"
)

var ErrEmptyText = errors.New("generator returned no text")

// Generator is a text-in/text-out model call. jsonMode asks for a JSON object.
type Generator interface {
	Generate(ctx context.Context, prompt string, jsonMode bool) (string, error)
}

// Draft is an enhanced submission title and description.
type Draft struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Service wraps a Generator with prompts and fallbacks.
type Service struct {
	gen     Generator
	timeout time.Duration
	logger  *zap.Logger
}

// NewService builds a service. A nil generator behaves like a missing API key.
func NewService(gen Generator, timeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{gen: gen, timeout: timeout, logger: logger}
}

// CuratorInsight writes a short mobile-friendly review of ex.
func (s *Service) CuratorInsight(ctx context.Context, ex domain.Exhibition) string {
	if s.gen == nil {
		return FallbackMissingKey
	}

	prompt := fmt.Sprintf(`
作為一位專業的藝術策展人，請用繁體中文 (Traditional Chinese) 寫一段適合手機閱讀的短評 (約 60 字)。
請針對以下展覽解釋為什麼值得一看，語氣要優雅且具吸引力：

展覽名稱: %s
藝術家/單位: %s
描述: %s
標籤: %s
`, ex.Title, ex.Artist, ex.Description, strings.Join(ex.Tags, ", "))

	text, err := s.generate(ctx, prompt, false)
	switch {
	case errors.Is(err, ErrEmptyText):
		return FallbackEmptyText
	case err != nil:
		s.logger.Warn("curator insight failed", zap.String("exhibition", ex.ID), zap.Error(err))
		return FallbackUnavailable
	}
	return text
}

// EnhanceDraft turns a rough idea into a title and description.
func (s *Service) EnhanceDraft(ctx context.Context, rawIdea string) Draft {
	if s.gen == nil {
		return Draft{Title: FallbackDraftTitleNoKey, Description: rawIdea}
	}

	prompt := fmt.Sprintf(`
使用者輸入了一個關於藝術展覽的初步想法："%s"。
請用繁體中文 (Traditional Chinese) 幫忙優化內容，回傳 JSON 格式：
1. title: 一個吸引人的展覽標題 (20字內)。
2. description: 一段流暢的展覽介紹 (80字內)。

請嚴格回傳 JSON 格式。
`, rawIdea)

	text, err := s.generate(ctx, prompt, true)
	if err != nil {
		s.logger.Warn("draft enhancement failed", zap.Error(err))
		return Draft{Title: FallbackDraftTitleError, Description: rawIdea}
	}

	var draft Draft
	if err := json.Unmarshal([]byte(stripFence(text)), &draft); err != nil {
		s.logger.Warn("draft enhancement returned invalid JSON", zap.Error(err))
		return Draft{Title: FallbackDraftTitleError, Description: rawIdea}
	}
	if draft.Title == "" {
		draft.Title = FallbackDraftTitleEmpty
	}
	if draft.Description == "" {
		draft.Description = rawIdea
	}
	return draft
}

func (s *Service) generate(ctx context.Context, prompt string, jsonMode bool) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	text, err := s.gen.Generate(ctx, prompt, jsonMode)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	return text, nil
}

// stripFence removes a markdown code fence some models wrap JSON in.
func stripFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
