package fieldmap

import (
	"reflect"
	"testing"

	"github.com/lshigami/survey-core/internal/model"
)

func names(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Name
	}
	return out
}

func sampleInput() Input {
	survey := &model.Survey{SID: 1, Datestamp: true, IPAddr: true}
	return Input{
		Survey: survey,
		// group 20 comes first in the survey even though its id is larger
		Groups: []model.QuestionGroup{{GID: 20, SID: 1, GroupOrder: 0}, {GID: 10, SID: 1, GroupOrder: 1}},
		Questions: []model.Question{
			{QID: 1, SID: 1, GID: 10, Type: model.QTypeListRadio, QuestionOrder: 1, Other: true},
			{QID: 2, SID: 1, GID: 20, Type: model.QTypeMultipleChoice, QuestionOrder: 1},
			{QID: 3, SID: 1, GID: 20, Type: model.QTypeRanking, QuestionOrder: 2},
			{QID: 4, SID: 1, GID: 10, Type: model.QTypeArrayTexts, QuestionOrder: 2},
			{QID: 5, ParentQID: 2, SID: 1, GID: 20, Title: "SQ002", QuestionOrder: 2},
			{QID: 6, ParentQID: 2, SID: 1, GID: 20, Title: "SQ001", QuestionOrder: 1},
			{QID: 7, ParentQID: 4, SID: 1, GID: 10, Title: "a", QuestionOrder: 1},
			{QID: 8, ParentQID: 4, SID: 1, GID: 10, Title: "b", QuestionOrder: 2},
			{QID: 9, ParentQID: 4, SID: 1, GID: 10, Title: "x", QuestionOrder: 1, ScaleID: 1},
		},
		RankingItems: map[uint]int{3: 3},
	}
}

func TestBuild(t *testing.T) {
	got := names(Build(sampleInput()))
	want := []string{
		"id", "token", "submitdate", "lastpage", "startlanguage", "seed", "startdate", "datestamp", "ipaddr",
		"1X20X2SQ001", "1X20X2SQ002",
		"1X20X31", "1X20X32", "1X20X33",
		"1X10X1", "1X10X1other",
		"1X10X4a_x", "1X10X4b_x",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Build:\n got %v\nwant %v", got, want)
	}
}

func TestBuildKinds(t *testing.T) {
	fields := Build(sampleInput())
	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}

	if f := byName["1X20X32"]; f.Kind != QuestionKind(model.QTypeRanking) || f.QID != 3 || f.AID != "2" {
		t.Fatalf("ranking field: got %+v", f)
	}
	if f := byName["ipaddr"]; f.Kind != KindIPAddress {
		t.Fatalf("ipaddr kind: got %q", f.Kind)
	}
	if !HasKind(fields, KindToken) {
		t.Fatalf("HasKind: token missing")
	}
	if HasKind(fields, KindURL) {
		t.Fatalf("HasKind: refurl present without RefURL")
	}
}

func TestBuildAnonymizedOtherTypes(t *testing.T) {
	in := Input{
		Survey: &model.Survey{SID: 5, Anonymized: true},
		Questions: []model.Question{
			{QID: 1, SID: 5, GID: 1, Type: model.QTypeMultipleWithComments, QuestionOrder: 1, Other: true},
			{QID: 2, ParentQID: 1, SID: 5, GID: 1, Title: "A"},
			{QID: 3, SID: 5, GID: 1, Type: model.QTypeDualScaleArray, QuestionOrder: 2},
			{QID: 4, ParentQID: 3, SID: 5, GID: 1, Title: "r1"},
			{QID: 5, SID: 5, GID: 1, Type: model.QTypeFileUpload, QuestionOrder: 3},
			{QID: 6, SID: 5, GID: 1, Type: model.QTypeListWithComment, QuestionOrder: 4},
			{QID: 7, SID: 5, GID: 1, Type: model.QTypeRanking, QuestionOrder: 5},
		},
	}
	got := names(Build(in))
	want := []string{
		"id", "submitdate", "lastpage", "startlanguage", "seed",
		"5X1X1A", "5X1X1Acomment", "5X1X1other", "5X1X1othercomment",
		"5X1X3r1#0", "5X1X3r1#1",
		"5X1X5", "5X1X5_filecount",
		"5X1X6", "5X1X6comment",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Build:\n got %v\nwant %v", got, want)
	}
}

func TestBuildTimings(t *testing.T) {
	fields := BuildTimings(sampleInput())
	got := names(fields)
	want := []string{
		"interviewtime",
		"1X20time", "1X20X2time", "1X20X3time",
		"1X10time", "1X10X1time", "1X10X4time",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("BuildTimings:\n got %v\nwant %v", got, want)
	}
	if fields[1].Kind != KindGroupTime || fields[2].Kind != KindQuestionTime {
		t.Fatalf("BuildTimings kinds: %q %q", fields[1].Kind, fields[2].Kind)
	}
}
