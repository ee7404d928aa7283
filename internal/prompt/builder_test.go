package prompt_test

import (
	"strings"
	"testing"

	"github.com/cobra893021/kajicon-go/internal/domain"
	"github.com/cobra893021/kajicon-go/internal/prompt"
)

func testSeed() domain.GroupTraitSeed {
	return domain.GroupTraitSeed{
		BasicPersonality: "場の空気を明るくするムードメーカー。",
		LifeTrend:        "人の縁が運を運ぶ。",
		FemaleTraits:     "聞き上手で相談役になりやすい。",
		MaleTraits:       "調整役として重宝される。",
		Work:             "対人折衝の最前線が適職。",
		Psychegram: domain.Psychegram{
			Features:      "嫌われることへの警戒心。",
			Interpersonal: "誰とでも合わせられる。",
			Action:        "根回しを済ませてから動く。",
			Expression:    "相手の語彙に合わせる。",
			Talent:        "場の温度を読む力。",
			Male:          "断れずに疲弊しやすい。",
			Female:        "感情を持ち帰って消耗しやすい。",
		},
	}
}

func TestBuild_ByteIdentical(t *testing.T) {
	seed := testSeed()
	first := prompt.Build("人気者のゾウ", seed, domain.Female)
	for i := 0; i < 5; i++ {
		if got := prompt.Build("人気者のゾウ", seed, domain.Female); got != first {
			t.Fatal("Build is not deterministic for identical inputs")
		}
	}
}

func TestBuild_EmbedsSeedVerbatim(t *testing.T) {
	seed := testSeed()
	p := prompt.Build("人気者のゾウ", seed, domain.Female)

	for _, want := range []string{
		seed.BasicPersonality,
		seed.FemaleTraits,
		seed.MaleTraits,
		seed.Psychegram.Talent,
		"人気者のゾウ",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("prompt missing seed text %q", want)
		}
	}
}

func TestBuild_FemaleTargeting(t *testing.T) {
	p := prompt.Build("人気者のゾウ", testSeed(), domain.Female)

	if !strings.Contains(p, "【femaleTraits】を重点的に") {
		t.Error("female prompt must emphasise femaleTraits")
	}
	if !strings.Contains(p, "【maleTraits】は必ず空文字") {
		t.Error("female prompt must force maleTraits to the empty string")
	}
	if !strings.Contains(p, `"maleTraits": ""`) {
		t.Error("female schema block must show maleTraits empty")
	}
	if !strings.Contains(p, "対象者は【女性】") {
		t.Error("female prompt must name the target gender")
	}
}

func TestBuild_MaleTargeting(t *testing.T) {
	p := prompt.Build("放浪の狼", testSeed(), domain.Male)

	if !strings.Contains(p, "【maleTraits】を重点的に") {
		t.Error("male prompt must emphasise maleTraits")
	}
	if !strings.Contains(p, "【femaleTraits】は必ず空文字") {
		t.Error("male prompt must force femaleTraits to the empty string")
	}
	if !strings.Contains(p, `"femaleTraits": ""`) {
		t.Error("male schema block must show femaleTraits empty")
	}
}

func TestBuild_GendersDiffer(t *testing.T) {
	seed := testSeed()
	if prompt.Build("放浪の狼", seed, domain.Male) == prompt.Build("放浪の狼", seed, domain.Female) {
		t.Error("male and female prompts must differ")
	}
}

func TestBuild_SchemaKeys(t *testing.T) {
	p := prompt.Build("放浪の狼", testSeed(), domain.Male)
	for _, key := range []string{
		`"title"`, `"basicPersonality"`, `"lifeTrend"`, `"femaleTraits"`,
		`"maleTraits"`, `"work"`, `"psychegram"`, `"features"`,
		`"interpersonal"`, `"action"`, `"expression"`, `"talent"`,
	} {
		if !strings.Contains(p, key) {
			t.Errorf("schema block missing key %s", key)
		}
	}
}
