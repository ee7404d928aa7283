// Package prompt renders the instruction block sent to the generative
// backend. Build is deterministic: identical inputs produce byte-identical
// output, with no timestamps or randomness.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cobra893021/kajicon-go/internal/domain"
)

// genderWords carries the Japanese label and the JSON key pair for one
// requested gender.
type genderWords struct {
	label    string
	target   string
	opposite string
}

func wordsFor(gender domain.Gender) genderWords {
	if gender == domain.Male {
		return genderWords{label: "男性", target: "maleTraits", opposite: "femaleTraits"}
	}
	return genderWords{label: "女性", target: "femaleTraits", opposite: "maleTraits"}
}

// Build renders the full diagnosis prompt for one archetype, seed and gender.
func Build(archetypeName string, seed domain.GroupTraitSeed, gender domain.Gender) string {
	w := wordsFor(gender)

	// Marshalling a fixed struct of strings cannot fail and keeps field
	// order stable, which Build's byte-determinism contract relies on.
	seedJSON, _ := json.MarshalIndent(seed, "", "  ")

	var b strings.Builder
	b.WriteString("あなたは「動物占い」のキャラクター性と「サイグラム」の構造的分析を融合させる、中小企業診断士の資格を持つ経営コンサルタントです。\n")
	fmt.Fprintf(&b, "対象者は【%s】です。以下の【対象キャラクター】と【診断用生データ】を読み込み、プロフェッショナルなプロファイリングレポートを作成してください。\n\n", w.label)

	fmt.Fprintf(&b, "【対象キャラクター】\n名前: %s\n\n", archetypeName)
	fmt.Fprintf(&b, "【診断用生データ】\n%s\n\n", seedJSON)

	b.WriteString("【レポート作成の絶対ルール】\n")
	b.WriteString("1. 出力テキスト内に「動物の名前」や「グループコード」を一切含めないでください。\n")
	fmt.Fprintf(&b, "2. 対象者が【%s】であることを踏まえ、生データの【%s】を重点的に分析に反映させてください。\n", w.label, w.target)
	fmt.Fprintf(&b, "3. JSON内の【%s】は必ず空文字 (\"\") にしてください。psychegram内の【%s】も同様に空文字にしてください。\n", w.opposite, oppositePsychegramKey(gender))
	b.WriteString("4. 比率として「動物占いデータ：サイグラムデータ」を「6：4」で構成してください。\n")
	b.WriteString("5. 「基本性格：」「人生の傾向：」などの見出しラベルや、「〇〇な動物」といった比喩表現を本文に含めないでください。\n")
	b.WriteString("6. JSONのキー名は以下を厳守し、Markdownのコードブロックは使わず、JSONオブジェクトのみを出力してください。\n\n")

	b.WriteString(schemaBlock(gender))
	return b.String()
}

func oppositePsychegramKey(gender domain.Gender) string {
	if gender == domain.Male {
		return "female"
	}
	return "male"
}

// schemaBlock spells out the required key set, nesting and per-field length
// targets. The opposite-gender slots are shown already empty so the model
// mirrors them back as empty strings.
func schemaBlock(gender domain.Gender) string {
	female := ""
	male := ""
	pgFemale := ""
	pgMale := ""
	if gender == domain.Female {
		female = "分析（150文字程度）"
		pgFemale = "女性特有の深層心理の解説（100文字程度）"
	} else {
		male = "分析（150文字程度）"
		pgMale = "男性特有の深層心理の解説（100文字程度）"
	}

	return fmt.Sprintf(`{
  "title": "キャラクターのキャッチコピー（20文字程度）",
  "basicPersonality": "分析結果（250文字程度）",
  "lifeTrend": "戦略アドバイス（200文字程度）",
  "femaleTraits": "%s",
  "maleTraits": "%s",
  "work": "ビジネスプラン（250文字程度）",
  "psychegram": {
    "features": "特徴（150文字程度）",
    "interpersonal": "マネジメント（150文字程度）",
    "action": "行動特性（150文字程度）",
    "expression": "スタイル（150文字程度）",
    "talent": "才能（150文字程度）",
    "male": "%s",
    "female": "%s"
  }
}`, female, male, pgMale, pgFemale)
}
