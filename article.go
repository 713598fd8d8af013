// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

package jsonld

const (
	// defaultArticleType is used when caller does not provide article type.
	defaultArticleType = "NewsArticle"
	// headlineMaxLen is the headline limit recommended for rich results.
	headlineMaxLen = 110
)

// Article is an Article, NewsArticle or BlogPosting document.
type Article struct {
	*Document
}

// NewArticle returns an article document whose mainEntityOfPage points to the
// serving host and request path.
func NewArticle(schemaType string, opts ...Option) *Article {
	if schemaType == "" {
		schemaType = defaultArticleType
	}

	article := &Article{Document: New(KindArticle, schemaType, false, opts...)}
	identity := article.cfg.identity
	page := newTypedObject("WebPage")
	page.Set("id", identity.HostOrDefault()+identity.PathOrDefault())
	article.data.Set("mainEntityOfPage", page)
	return article
}

// SetPublisher sets publisher organization; repeated calls update fields in place.
func (a *Article) SetPublisher(name, email, phone string) {
	name = ValidText(name)
	if name == "" {
		a.reject("publisher", "empty name")
		return
	}

	publisher := a.data.childObject("publisher", "Organization")
	publisher.Set("name", name)
	setNonEmpty(publisher, "email", ValidEmail(email))
	setNonEmpty(publisher, "telephone", ValidText(phone))
}

// SetLogo sets publisher logo image.
func (a *Article) SetLogo(ref string) {
	logo := buildImage(a.cfg.ctx, a.cfg.probe, ref)
	if logo == nil {
		a.reject("publisher.logo", "image not resolvable")
		return
	}

	a.data.childObject("publisher", "Organization").Set("logo", logo)
}

// SetInfo sets headline, description and dates. The headline is truncated to
// 110 characters; an empty headline makes the whole call a no-op.
// published and modified accept the inputs of ValidDateIn; nil skips them.
func (a *Article) SetInfo(headline, description string, published, modified any) {
	headline = TruncateEllipsis(ValidText(headline), headlineMaxLen, false)
	if headline == "" {
		a.reject("headline", "empty headline")
		return
	}

	a.data.Set("headline", headline)
	setNonEmpty(a.data, "description", ValidText(description))
	a.setDate("datePublished", published)
	a.setDate("dateModified", modified)
}

// SetAuthor sets author person.
func (a *Article) SetAuthor(name string) {
	name = ValidText(name)
	if name == "" {
		a.reject("author", "empty name")
		return
	}

	author := newTypedObject("Person")
	author.Set("name", name)
	a.data.Set("author", author)
}
