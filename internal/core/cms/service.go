// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cms

import (
	"context"
	"log/slog"

	"github.com/taibuivan/legaldesign/internal/core/catalog"
	"github.com/taibuivan/legaldesign/internal/core/patch"
	"github.com/taibuivan/legaldesign/internal/platform/database/schema"
	"github.com/taibuivan/legaldesign/internal/platform/docstore"
	"github.com/taibuivan/legaldesign/internal/platform/validate"
)

// legalAidLists are the list fields of the legal aid page. An explicit
// empty list clears them, while an empty string or object is ignored.
var legalAidLists = []string{"baro_contacts", "helplines", "sections", "required_documents", "important_notes"}

// legalAidPolicy keeps important_notes unless the payload names them, since
// older admin panels never send that field.
var legalAidPolicy = patch.Policy{
	Fields:          patch.FieldsOf(LegalAidInfo{}),
	Lists:           legalAidLists,
	Sticky:          []string{"important_notes"},
	ClearOnEmpty:    legalAidLists,
	EmptyIsOmission: true,
}

// # Service Layer

// Service groups the CMS singletons.
type Service struct {
	legalAid *Singleton[LegalAidInfo]
	ads      *Singleton[AdSettings]
	site     *Singleton[SiteSettings]
	menu     *Singleton[MenuConfig]
	footer   *Singleton[FooterConfig]
	home     *Singleton[HomePageContent]
	about    *Singleton[AboutPageContent]
	contact  *Singleton[ContactPageContent]
}

// NewService constructs the CMS [Service].
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		legalAid: &Singleton[LegalAidInfo]{
			collection: schema.CollectionLegalAidInfo,
			repo:       repo,
			policy:     legalAidPolicy,
			prototype:  newLegalAidInfo,
			defaults:   catalog.LegalAid,
			validate:   validateLegalAid,
			logger:     logger,
			now:        docstore.Now,
		},
		ads:     singletonOf(repo, logger, schema.CollectionAdSettings, newAdSettings, nil),
		site:    singletonOf(repo, logger, schema.CollectionSiteSettings, newSiteSettings, validateSiteSettings),
		menu:    singletonOf(repo, logger, schema.CollectionMenuConfig, newMenuConfig, nil),
		footer:  singletonOf(repo, logger, schema.CollectionFooterConfig, newFooterConfig, nil),
		home:    singletonOf(repo, logger, schema.CollectionHomePageContent, newHomePageContent, nil),
		about:   singletonOf(repo, logger, schema.CollectionAboutPageContent, newAboutPageContent, nil),
		contact: singletonOf(repo, logger, schema.CollectionContactPageContent, newContactPageContent, validateContactPage),
	}
}

// singletonOf builds a singleton whose defaults ship in the catalog and whose
// list fields become [] when sent as null.
func singletonOf[T any](repo Repository, logger *slog.Logger, collection string, prototype func() T, validate func(*T) error) *Singleton[T] {
	var zero T
	return &Singleton[T]{
		collection: collection,
		repo:       repo,
		policy:     patch.Policy{Fields: patch.FieldsOf(zero), Lists: patch.ListsOf(zero)},
		prototype:  prototype,
		defaults:   func() (map[string]any, error) { return catalog.Defaults(collection) },
		validate:   validate,
		logger:     logger,
		now:        docstore.Now,
	}
}

// EnsureLegalAid stores the default legal aid page when none exists.
func (service *Service) EnsureLegalAid(context context.Context) error {
	_, err := service.legalAid.Get(context)
	return err
}

// AdSettingsPublic returns the ad settings for the public site, without the
// document id.
func (service *Service) AdSettingsPublic(context context.Context) (map[string]any, error) {
	settings, err := service.ads.Peek(context)
	if err != nil {
		return nil, err
	}

	document, err := docstore.Encode(settings)
	if err != nil {
		return nil, err
	}
	delete(document, patch.FieldID)
	return document, nil
}

func validateLegalAid(info *LegalAidInfo) error {
	validator := &validate.Validator{}
	validator.MaxLen("title", info.Title, 300)
	return validator.Err()
}

func validateSiteSettings(settings *SiteSettings) error {
	if settings.ContactEmail == "" {
		return nil
	}
	return (&validate.Validator{}).Email("contact_email", settings.ContactEmail).Err()
}

func validateContactPage(content *ContactPageContent) error {
	if content.ContactEmail == "" {
		return nil
	}
	return (&validate.Validator{}).Email("contact_email", content.ContactEmail).Err()
}
