package openai

import (
	"strings"

	"github.com/front10k/tarrot7/internal/domain"
)

// reportSchema is repeated verbatim in the prompt; the sanitizer enforces
// it on whatever comes back.
const reportSchema = `{"title":string,"quote":string,"status":string,"summary":string,"todayLine":string,"strengths":[string,string,string],"actions":[{"title":string,"description":string},{"title":string,"description":string}]}`

// buildPrompt frames the Korean life-coach persona, the formatting rules,
// the JSON-only directive and the schema, then embeds the request body as
// received.
func buildPrompt(p domain.ReadingPayload) string {
	raw := string(p.Raw)
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}
	lines := []string{
		"당신은 한국어 라이프 코치입니다.",
		"입력된 생년월일시, 설문 벡터, 타로 3장(코어/패턴/흐름) 정보를 바탕으로 짧고 실용적인 해석을 작성하세요.",
		"각 카드의 정/역방향과 키워드를 반영하세요.",
		"title은 캐릭터 이름처럼 간결하게, todayLine은 1~2문장 요약으로 작성하세요.",
		"반드시 JSON으로만 응답하세요.",
		"스키마: " + reportSchema,
		"입력 데이터: " + raw,
	}
	return strings.Join(lines, "\n")
}
