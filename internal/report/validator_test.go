package report_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cobra893021/kajicon-go/internal/domain"
	"github.com/cobra893021/kajicon-go/internal/report"
)

func reportJSON(femaleTraits, maleTraits string) string {
	return fmt.Sprintf(`{
  "title": "縁をつなぐ調整役",
  "basicPersonality": "場の空気を的確に読み、関係者の利害を静かに束ねるタイプです。",
  "lifeTrend": "人の縁が転機を運びます。",
  "femaleTraits": %q,
  "maleTraits": %q,
  "work": "折衝の最前線で力を発揮します。",
  "psychegram": {
    "features": "警戒心が判断の基準です。",
    "interpersonal": "誰とでも歩調を合わせられます。",
    "action": "根回しを済ませてから動きます。",
    "expression": "相手に合わせた語彙を選びます。",
    "talent": "場の温度を読む力があります。",
    "male": "抱え込みやすい傾向があります。",
    "female": "共感で消耗しやすい傾向があります。"
  }
}`, femaleTraits, maleTraits)
}

func TestValidate_PureJSON(t *testing.T) {
	rep, err := report.Validate(reportJSON("聞き上手です。", ""), domain.Female)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.FemaleTraits != "聞き上手です。" {
		t.Errorf("unexpected femaleTraits: %q", rep.FemaleTraits)
	}
	if rep.MaleTraits != "" {
		t.Errorf("maleTraits should be empty, got %q", rep.MaleTraits)
	}
}

func TestValidate_FenceWrapped(t *testing.T) {
	raw := "```json\n" + reportJSON("聞き上手です。", "") + "\n```"
	rep, err := report.Validate(raw, domain.Female)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.Title != "縁をつなぐ調整役" {
		t.Errorf("unexpected title: %q", rep.Title)
	}
}

func TestValidate_EmbeddedInProse(t *testing.T) {
	raw := "以下が診断結果です。\n" + reportJSON("聞き上手です。", "") + "\n以上です。"
	if _, err := report.Validate(raw, domain.Female); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_NotJSON(t *testing.T) {
	_, err := report.Validate("not json at all", domain.Female)
	if !errors.Is(err, domain.ErrInvalidReport) {
		t.Errorf("expected ErrInvalidReport, got %v", err)
	}
}

func TestValidate_MissingBasicPersonality(t *testing.T) {
	raw := `{"title": "x", "femaleTraits": "y"}`
	_, err := report.Validate(raw, domain.Female)
	if !errors.Is(err, domain.ErrInvalidReport) {
		t.Errorf("expected ErrInvalidReport, got %v", err)
	}
}

// The prompt asks the model to empty the opposite-gender field, but that is a
// request, not a guarantee. A leak is normalised, not rejected.
func TestValidate_LeakedOppositeGenderNormalised(t *testing.T) {
	rep, err := report.Validate(reportJSON("聞き上手です。", "leaked text"), domain.Female)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.MaleTraits != "" {
		t.Errorf("leaked maleTraits not normalised: %q", rep.MaleTraits)
	}
	if rep.Psychegram.Male != "" {
		t.Errorf("leaked psychegram.male not normalised: %q", rep.Psychegram.Male)
	}
	if rep.Psychegram.Female == "" {
		t.Error("requested-gender psychegram field must survive")
	}
}

func TestValidate_MaleRequest(t *testing.T) {
	rep, err := report.Validate(reportJSON("leaked", "仕事観を軸に動きます。"), domain.Male)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.FemaleTraits != "" {
		t.Errorf("femaleTraits should be blanked for male request, got %q", rep.FemaleTraits)
	}
	if rep.MaleTraits == "" {
		t.Error("maleTraits must survive a male request")
	}
	if rep.Psychegram.Female != "" {
		t.Errorf("psychegram.female should be blanked, got %q", rep.Psychegram.Female)
	}
}

func TestValidate_RequestedGenderEmpty(t *testing.T) {
	_, err := report.Validate(reportJSON("", "whatever"), domain.Female)
	if !errors.Is(err, domain.ErrInvalidReport) {
		t.Errorf("expected ErrInvalidReport for empty requested-gender field, got %v", err)
	}
}

func TestValidate_GenderExclusivityInvariant(t *testing.T) {
	for _, gender := range []domain.Gender{domain.Female, domain.Male} {
		rep, err := report.Validate(reportJSON("女性向け分析。", "男性向け分析。"), gender)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", gender, err)
		}
		femaleSet := rep.FemaleTraits != ""
		maleSet := rep.MaleTraits != ""
		if femaleSet == maleSet {
			t.Errorf("%s: exactly one of femaleTraits/maleTraits must be non-empty", gender)
		}
		if gender == domain.Female && !femaleSet {
			t.Errorf("female request lost femaleTraits")
		}
		if gender == domain.Male && !maleSet {
			t.Errorf("male request lost maleTraits")
		}
	}
}

func TestValidate_BracesInsideStrings(t *testing.T) {
	raw := "prefix " + reportJSON("記号 {} を含む分析。", "") + " suffix"
	rep, err := report.Validate(raw, domain.Female)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.FemaleTraits != "記号 {} を含む分析。" {
		t.Errorf("unexpected femaleTraits: %q", rep.FemaleTraits)
	}
}
