package services

import (
	"context"
	"sort"
	"strings"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"

	"paju/constants"
	"paju/dto"
	"paju/models"
)

const (
	// MinSearchScore là điểm tối thiểu để một món được trả về
	MinSearchScore = 0.6
	// DefaultSearchLimit là số kết quả tối đa khi client không truyền limit
	DefaultSearchLimit = 20
)

func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

// Tạo đối tượng closestmatch cho danh sách từ khóa
func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

// Tính độ tương đồng giữa hai chuỗi
func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len([]rune(a)))
	if l := float64(len([]rune(b))); l > maxLen {
		maxLen = l
	}

	if maxLen == 0 {
		return 1.0
	}
	return 1.0 - float64(distance)/maxLen
}

// titleScore: 1 nếu tên chứa từ khóa, ngược lại là độ giống cao nhất với tên hoặc từng từ trong tên
func titleScore(query, title string) float64 {
	if strings.Contains(title, query) {
		return 1.0
	}
	best := calculateSimilarity(query, title)
	for _, word := range strings.Fields(title) {
		if s := calculateSimilarity(query, word); s > best {
			best = s
		}
	}
	return best
}

// SearchMenu chấm điểm các món theo từ khóa, trả về món có điểm >= MinSearchScore,
// điểm cao trước, cùng điểm thì giữ thứ tự đầu vào
func SearchMenu(items []models.MenuItem, query string, limit int) []dto.SearchResult {
	results := []dto.SearchResult{}
	q := normalizeInput(query)
	if q == "" || len(items) == 0 {
		return results
	}
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	seen := make(map[string]bool)
	var categories []string
	for _, it := range items {
		c := normalizeInput(it.Category)
		if c != "" && !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	closestCategory := ""
	if len(categories) > 0 {
		cm := createMatcher(categories)
		if c := cm.Closest(q); c != "" && calculateSimilarity(q, c) >= 0.5 {
			closestCategory = c
		}
	}

	for _, it := range items {
		score := titleScore(q, normalizeInput(it.Title))
		if closestCategory != "" && normalizeInput(it.Category) == closestCategory {
			score += 0.3
		}
		if strings.Contains(normalizeInput(it.Description), q) {
			score += 0.2
		}
		if score >= MinSearchScore {
			results = append(results, dto.SearchResult{Item: it, Score: score})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Search tìm trong các món đang bán của các menu đang bật
func (s *MenuService) Search(ctx context.Context, query string, limit int) ([]dto.SearchResult, error) {
	enabled, err := s.EnabledMenuTypes(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.ListItems(ctx, nil)
	if err != nil {
		return nil, err
	}

	on := make(map[constants.MenuType]bool, len(enabled))
	for _, m := range enabled {
		on[m] = true
	}
	candidates := []models.MenuItem{}
	for _, it := range items {
		if it.IsAvailable && on[it.MenuType] {
			candidates = append(candidates, it)
		}
	}
	return SearchMenu(candidates, query, limit), nil
}
