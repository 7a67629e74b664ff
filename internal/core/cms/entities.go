// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cms

import "time"

// Base carries the identity of a stored singleton. A default that was never
// stored has none, so the fields are omitted.
type Base struct {
	ID        string     `json:"id,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// # Legal Aid

type AidSection struct {
	Icon    string `json:"icon"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Color   string `json:"color"`
}

type Helpline struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Hours       string `json:"hours"`
	Description string `json:"description"`
}

// BaroContact is a bar association office offering legal aid.
type BaroContact struct {
	City    string `json:"city"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Website string `json:"website"`
}

// LegalAidInfo is the free legal aid page.
type LegalAidInfo struct {
	Base
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	Sections            []AidSection      `json:"sections"`
	Helplines           []Helpline        `json:"helplines"`
	BaroContacts        []BaroContact     `json:"baro_contacts"`
	RequiredDocuments   []string          `json:"required_documents"`
	ImportantNotes      []string          `json:"important_notes"`
	EligibilityCriteria string            `json:"eligibility_criteria"`
	ApplicationProcess  string            `json:"application_process"`
	ContactInfo         map[string]string `json:"contact_info"`
	IsActive            bool              `json:"is_active"`
}

func newLegalAidInfo() LegalAidInfo {
	return LegalAidInfo{
		Sections:          []AidSection{},
		Helplines:         []Helpline{},
		BaroContacts:      []BaroContact{},
		RequiredDocuments: []string{},
		ImportantNotes:    []string{},
		ContactInfo:       map[string]string{},
		IsActive:          true,
	}
}

// # Site Chrome

// AdSettings holds the ad snippets injected by the public site.
type AdSettings struct {
	Base
	IsActive       bool   `json:"is_active"`
	HorizontalCode string `json:"horizontal_code"`
	SquareCode     string `json:"square_code"`
	SidebarCode    string `json:"sidebar_code"`
	MobileCode     string `json:"mobile_code"`
	InfeedCode     string `json:"infeed_code"`
	HeadCode       string `json:"head_code"`
	BodyTopCode    string `json:"body_top_code"`
	BodyBottomCode string `json:"body_bottom_code"`
}

func newAdSettings() AdSettings {
	return AdSettings{}
}

type SiteSettings struct {
	Base
	SiteTitle       string            `json:"site_title"`
	SiteDescription string            `json:"site_description"`
	LogoURL         string            `json:"logo_url"`
	FaviconURL      string            `json:"favicon_url"`
	ContactEmail    string            `json:"contact_email"`
	ContactPhone    string            `json:"contact_phone"`
	ContactAddress  string            `json:"contact_address"`
	SocialLinks     map[string]string `json:"social_links"`
	GATrackingID    string            `json:"ga_tracking_id"`
	IsActive        bool              `json:"is_active"`
}

func newSiteSettings() SiteSettings {
	return SiteSettings{SocialLinks: map[string]string{}, IsActive: true}
}

type MenuItem struct {
	Label    string `json:"label"`
	URL      string `json:"url"`
	Order    int    `json:"order"`
	IsActive bool   `json:"is_active"`
}

// HeaderButton is a call-to-action shown next to the menu. Type is
// "primary" or "secondary".
type HeaderButton struct {
	Label    string `json:"label"`
	URL      string `json:"url"`
	Type     string `json:"type"`
	IsActive bool   `json:"is_active"`
}

type MenuConfig struct {
	Base
	MenuItems     []MenuItem     `json:"menu_items"`
	HeaderButtons []HeaderButton `json:"header_buttons"`
	IsActive      bool           `json:"is_active"`
}

func newMenuConfig() MenuConfig {
	return MenuConfig{MenuItems: []MenuItem{}, HeaderButtons: []HeaderButton{}, IsActive: true}
}

type FooterLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type FooterSection struct {
	Title string       `json:"title"`
	Links []FooterLink `json:"links"`
}

type FooterConfig struct {
	Base
	FooterSections []FooterSection   `json:"footer_sections"`
	CopyrightText  string            `json:"copyright_text"`
	SocialLinks    map[string]string `json:"social_links"`
	IsActive       bool              `json:"is_active"`
}

func newFooterConfig() FooterConfig {
	return FooterConfig{FooterSections: []FooterSection{}, SocialLinks: map[string]string{}, IsActive: true}
}

// # Page Sections

type Feature struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type HomePageContent struct {
	Base
	HeroTitle                 string    `json:"hero_title"`
	HeroTitleHighlight        string    `json:"hero_title_highlight"`
	HeroSubtitle              string    `json:"hero_subtitle"`
	HeroPrimaryBtnText        string    `json:"hero_primary_btn_text"`
	HeroPrimaryBtnURL         string    `json:"hero_primary_btn_url"`
	HeroSecondaryBtnText      string    `json:"hero_secondary_btn_text"`
	HeroSecondaryBtnURL       string    `json:"hero_secondary_btn_url"`
	StatsProcessesNumber      string    `json:"stats_processes_number"`
	StatsProcessesLabel       string    `json:"stats_processes_label"`
	StatsProcessesDescription string    `json:"stats_processes_description"`
	StatsStepsNumber          string    `json:"stats_steps_number"`
	StatsStepsLabel           string    `json:"stats_steps_label"`
	StatsStepsDescription     string    `json:"stats_steps_description"`
	StatsFreeNumber           string    `json:"stats_free_number"`
	StatsFreeLabel            string    `json:"stats_free_label"`
	StatsFreeDescription      string    `json:"stats_free_description"`
	FeaturesTitle             string    `json:"features_title"`
	FeaturesDescription       string    `json:"features_description"`
	FeaturesItems             []Feature `json:"features_items"`
	BottomCTATitle            string    `json:"bottom_cta_title"`
	BottomCTADescription      string    `json:"bottom_cta_description"`
	BottomCTAPrimaryBtnText   string    `json:"bottom_cta_primary_btn_text"`
	BottomCTAPrimaryBtnURL    string    `json:"bottom_cta_primary_btn_url"`
	BottomCTASecondaryBtnText string    `json:"bottom_cta_secondary_btn_text"`
	BottomCTASecondaryBtnURL  string    `json:"bottom_cta_secondary_btn_url"`
	IsActive                  bool      `json:"is_active"`
}

func newHomePageContent() HomePageContent {
	return HomePageContent{FeaturesItems: []Feature{}, IsActive: true}
}

type TeamMember struct {
	Name        string `json:"name"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

type AboutPageContent struct {
	Base
	HeroTitle          string       `json:"hero_title"`
	HeroDescription    string       `json:"hero_description"`
	MissionTitle       string       `json:"mission_title"`
	MissionDescription string       `json:"mission_description"`
	VisionTitle        string       `json:"vision_title"`
	VisionDescription  string       `json:"vision_description"`
	Values             []Feature    `json:"values"`
	TeamMembers        []TeamMember `json:"team_members"`
	IsActive           bool         `json:"is_active"`
}

func newAboutPageContent() AboutPageContent {
	return AboutPageContent{Values: []Feature{}, TeamMembers: []TeamMember{}, IsActive: true}
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type ContactPageContent struct {
	Base
	HeroTitle              string    `json:"hero_title"`
	HeroDescription        string    `json:"hero_description"`
	ContactEmail           string    `json:"contact_email"`
	ContactPhone           string    `json:"contact_phone"`
	ContactAddress         string    `json:"contact_address"`
	OfficeHours            string    `json:"office_hours"`
	ContactFormTitle       string    `json:"contact_form_title"`
	ContactFormDescription string    `json:"contact_form_description"`
	FAQTitle               string    `json:"faq_title"`
	FAQDescription         string    `json:"faq_description"`
	FAQItems               []FAQItem `json:"faq_items"`
	IsActive               bool      `json:"is_active"`
}

func newContactPageContent() ContactPageContent {
	return ContactPageContent{FAQItems: []FAQItem{}, IsActive: true}
}
