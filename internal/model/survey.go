package model

import (
	"fmt"
	"time"
)

type Survey struct {
	SID             uint            `gorm:"column:sid;primarykey" json:"sid"`
	Language        string          `json:"language" gorm:"size:20;not null;default:'en'"` // base language
	Active          bool            `json:"active" gorm:"not null;default:false"`
	Anonymized      bool            `json:"anonymized" gorm:"not null;default:false"`
	SaveTimings     bool            `json:"save_timings" gorm:"not null;default:false"`
	IPAddr          bool            `json:"ip_addr" gorm:"column:ipaddr;not null;default:false"`
	RefURL          bool            `json:"ref_url" gorm:"column:refurl;not null;default:false"`
	Datestamp       bool            `json:"datestamp" gorm:"not null;default:false"`
	AutoNumberStart int             `json:"autonumber_start" gorm:"column:autonumber_start;not null;default:0"`
	Groups          []QuestionGroup `json:"groups,omitempty" gorm:"foreignKey:SID;references:SID"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ResponsesTableName is the dynamically created table holding one row per response.
func (s *Survey) ResponsesTableName() string {
	return fmt.Sprintf("survey_%d", s.SID)
}

// TimingsTableName is the table holding per-question durations when timings are saved.
func (s *Survey) TimingsTableName() string {
	return fmt.Sprintf("survey_%d_timings", s.SID)
}

type QuestionGroup struct {
	GID        uint      `gorm:"column:gid;primarykey" json:"gid"`
	SID        uint      `json:"sid" gorm:"column:sid;not null;index"`
	GroupOrder int       `json:"group_order" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
