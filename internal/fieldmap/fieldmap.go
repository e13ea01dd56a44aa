// Package fieldmap derives the ordered list of response-table columns from a survey's questions.
package fieldmap

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/lshigami/survey-core/internal/model"
)

// Kind is the semantic type of a response column. Question columns use the question type code.
type Kind string

const (
	KindID            Kind = "id"
	KindToken         Kind = "token"
	KindSubmitDate    Kind = "submitdate"
	KindLastPage      Kind = "lastpage"
	KindStartLanguage Kind = "startlanguage"
	KindSeed          Kind = "seed"
	KindStartDate     Kind = "startdate"
	KindDatestamp     Kind = "datestamp"
	KindIPAddress     Kind = "ipaddress"
	KindURL           Kind = "url"

	KindInterviewTime Kind = "interviewtime"
	KindGroupTime     Kind = "grouptime"
	KindQuestionTime  Kind = "questiontime"
)

// QuestionKind maps a question type code to its field kind.
func QuestionKind(questionType string) Kind {
	return Kind(questionType)
}

// Field is one column of the response (or timings) table.
type Field struct {
	Name    string `json:"fieldname"`
	Kind    Kind   `json:"type"`
	SID     uint   `json:"sid"`
	GID     uint   `json:"gid,omitempty"`
	QID     uint   `json:"qid,omitempty"`
	AID     string `json:"aid,omitempty"` // sub-field suffix: sub-question code, "other", rank number...
	ScaleID int    `json:"scale_id,omitempty"`
	Title   string `json:"title,omitempty"`
}

// Input is everything needed to derive a survey's field map.
type Input struct {
	Survey    *model.Survey
	Groups    []model.QuestionGroup
	Questions []model.Question // top-level questions and sub-questions
	// RankingItems is the number of rank columns per ranking question id.
	RankingItems map[uint]int
}

// Build returns the response-table field map: system fields first, then question columns
// in group order and question order.
func Build(in Input) []Field {
	s := in.Survey
	fields := []Field{{Name: "id", Kind: KindID, SID: s.SID}}
	if !s.Anonymized {
		fields = append(fields, Field{Name: "token", Kind: KindToken, SID: s.SID})
	}
	fields = append(fields,
		Field{Name: "submitdate", Kind: KindSubmitDate, SID: s.SID},
		Field{Name: "lastpage", Kind: KindLastPage, SID: s.SID},
		Field{Name: "startlanguage", Kind: KindStartLanguage, SID: s.SID},
		Field{Name: "seed", Kind: KindSeed, SID: s.SID},
	)
	if s.Datestamp {
		fields = append(fields,
			Field{Name: "startdate", Kind: KindStartDate, SID: s.SID},
			Field{Name: "datestamp", Kind: KindDatestamp, SID: s.SID},
		)
	}
	if s.IPAddr {
		fields = append(fields, Field{Name: "ipaddr", Kind: KindIPAddress, SID: s.SID})
	}
	if s.RefURL {
		fields = append(fields, Field{Name: "refurl", Kind: KindURL, SID: s.SID})
	}

	top, subs := split(in)
	for _, q := range top {
		fields = append(fields, questionFields(q, subs[q.QID], in.RankingItems[q.QID])...)
	}
	return fields
}

// BuildTimings returns the timed fields: overall interview time, one per group and one per question.
func BuildTimings(in Input) []Field {
	s := in.Survey
	fields := []Field{{Name: "interviewtime", Kind: KindInterviewTime, SID: s.SID}}

	top, _ := split(in)
	var lastGID uint
	seenGroup := false
	for _, q := range top {
		if !seenGroup || q.GID != lastGID {
			fields = append(fields, Field{
				Name: fmt.Sprintf("%dX%dtime", s.SID, q.GID),
				Kind: KindGroupTime,
				SID:  s.SID,
				GID:  q.GID,
			})
			lastGID, seenGroup = q.GID, true
		}
		fields = append(fields, Field{
			Name:  sgqa(q) + "time",
			Kind:  KindQuestionTime,
			SID:   s.SID,
			GID:   q.GID,
			QID:   q.QID,
			Title: q.Title,
		})
	}
	return fields
}

// HasKind reports whether any field is of the given kind.
func HasKind(fields []Field, kind Kind) bool {
	for _, f := range fields {
		if f.Kind == kind {
			return true
		}
	}
	return false
}

func sgqa(q model.Question) string {
	return fmt.Sprintf("%dX%dX%d", q.SID, q.GID, q.QID)
}

// split orders top-level questions and indexes sub-questions by parent.
func split(in Input) ([]model.Question, map[uint][]model.Question) {
	groupRank := make(map[uint]int, len(in.Groups))
	for i, g := range in.Groups {
		groupRank[g.GID] = i
	}
	rank := func(gid uint) int {
		if r, ok := groupRank[gid]; ok {
			return r
		}
		return len(in.Groups)
	}

	var top []model.Question
	subs := make(map[uint][]model.Question)
	for _, q := range in.Questions {
		if q.ParentQID == 0 {
			top = append(top, q)
		} else {
			subs[q.ParentQID] = append(subs[q.ParentQID], q)
		}
	}

	sort.SliceStable(top, func(i, j int) bool {
		ri, rj := rank(top[i].GID), rank(top[j].GID)
		if ri != rj {
			return ri < rj
		}
		if top[i].GID != top[j].GID {
			return top[i].GID < top[j].GID
		}
		if top[i].QuestionOrder != top[j].QuestionOrder {
			return top[i].QuestionOrder < top[j].QuestionOrder
		}
		return top[i].QID < top[j].QID
	})
	for parent := range subs {
		list := subs[parent]
		sort.SliceStable(list, func(i, j int) bool {
			if list[i].QuestionOrder != list[j].QuestionOrder {
				return list[i].QuestionOrder < list[j].QuestionOrder
			}
			return list[i].QID < list[j].QID
		})
	}
	return top, subs
}

func questionFields(q model.Question, subs []model.Question, rankItems int) []Field {
	base := sgqa(q)
	kind := QuestionKind(q.Type)
	field := func(suffix string, scaleID int) Field {
		return Field{
			Name:    base + suffix,
			Kind:    kind,
			SID:     q.SID,
			GID:     q.GID,
			QID:     q.QID,
			AID:     suffix,
			ScaleID: scaleID,
			Title:   q.Title,
		}
	}

	var out []Field
	switch q.Type {
	case model.QTypeListRadio, model.QTypeListDropdown:
		out = append(out, field("", 0))
		if q.Other {
			out = append(out, field("other", 0))
		}
	case model.QTypeListWithComment:
		out = append(out, field("", 0), field("comment", 0))
	case model.QTypeMultipleChoice:
		for _, sq := range scale(subs, 0) {
			out = append(out, field(sq.Title, 0))
		}
		if q.Other {
			out = append(out, field("other", 0))
		}
	case model.QTypeMultipleWithComments:
		for _, sq := range scale(subs, 0) {
			out = append(out, field(sq.Title, 0), field(sq.Title+"comment", 0))
		}
		if q.Other {
			out = append(out, field("other", 0), field("othercomment", 0))
		}
	case model.QTypeArray5Point, model.QTypeArray10Point, model.QTypeArrayYesUncertainNo,
		model.QTypeArrayIncreaseSame, model.QTypeArray, model.QTypeArrayByColumn,
		model.QTypeMultipleNumerical, model.QTypeMultipleShortText:
		for _, sq := range scale(subs, 0) {
			out = append(out, field(sq.Title, 0))
		}
	case model.QTypeDualScaleArray:
		for _, sq := range scale(subs, 0) {
			out = append(out, field(sq.Title+"#0", 0), field(sq.Title+"#1", 1))
		}
	case model.QTypeArrayNumbers, model.QTypeArrayTexts:
		xAxis := scale(subs, 1)
		for _, y := range scale(subs, 0) {
			for _, x := range xAxis {
				out = append(out, field(y.Title+"_"+x.Title, 0))
			}
		}
	case model.QTypeRanking:
		for i := 1; i <= rankItems; i++ {
			out = append(out, field(strconv.Itoa(i), 0))
		}
	case model.QTypeFileUpload:
		out = append(out, field("", 0), field("_filecount", 0))
	default:
		out = append(out, field("", 0))
	}
	return out
}

func scale(subs []model.Question, scaleID int) []model.Question {
	var out []model.Question
	for _, sq := range subs {
		if sq.ScaleID == scaleID {
			out = append(out, sq)
		}
	}
	return out
}
