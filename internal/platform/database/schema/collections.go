// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// # Document Collections

// Collection names of the content.document table. The names match the ones
// the public site and the admin panel were built against.
const (
	CollectionLegalProcesses       = "legal_processes"
	CollectionCalculatorParameters = "calculator_parameters"
	CollectionContentPages         = "content_pages"
	CollectionBlogPosts            = "blog_posts"
	CollectionDecisions            = "supreme_court_decisions"
	CollectionDocumentDescriptions = "document_descriptions"
	CollectionAdminUsers           = "admin_users"
)

// Singleton collections hold at most one document each.
const (
	CollectionLegalAidInfo       = "legal_aid_info"
	CollectionAdSettings         = "ad_settings"
	CollectionSiteSettings       = "site_settings"
	CollectionMenuConfig         = "menu_config"
	CollectionFooterConfig       = "footer_config"
	CollectionHomePageContent    = "home_page_content"
	CollectionAboutPageContent   = "about_page_content"
	CollectionContactPageContent = "contact_page_content"
)
