// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/jsonld

/*
Package jsonld builds validated schema.org JSON-LD documents for embedding in
web pages. It covers Article, LocalBusiness and Event documents on top of a
shared Document type.

Every setter validates its input and silently skips the affected property
when validation fails. Callers that care about completeness inspect the
resulting Object instead of relying on return values.

Build a local business with a department:

	business := jsonld.NewLocalBusiness("FoodEstablishment", false,
		jsonld.WithIdentity(jsonld.IdentityFromRequest(r)),
	)
	business.SetURL("https://www.example.com", "")
	business.SetInfo("Climbing Center", "info@example.com", "12345 67890")
	business.SetAddress("Street 12", "12345", "MyTown", "", "Germany")
	business.AddOpeningHours([]bool{true, true, true, true, true, false, false}, "8:00", "12:00")

	department := jsonld.NewLocalBusiness("Organization", true)
	department.SetURL("https://www.example.com/outdoor", "")
	department.SetInfo("Outdoor Center", "outdoor@example.com", "")
	business.AddDepartment(department)

	fmt.Println(business.HTMLHeadTag(false))

Build an event that happens on site and online:

	event := jsonld.NewEvent()
	event.SetInfo("Open day", "2021-10-02 10:00", "2021-10-02 18:00")
	event.SetLocation("Climbing Center", 48.3365629, 7.8447896, "")
	event.SetVirtualLocation("https://stream.example.com/open-day")
	event.AddOffer(jsonld.Offer{Name: "Adult", Price: 12.5, Currency: "eur"})

	js := event.JSON(true)
	if js == "" {
		// encoding failed, for example on invalid UTF-8 input
	}

Build a document from a YAML manifest:

	manifest, err := jsonld.LoadManifestFile("article.yaml")
	if err != nil {
		return err
	}

	doc, err := manifest.Build(jsonld.WithTimeLocation(time.UTC))
	if err != nil {
		return err
	}

	fmt.Println(doc.JSON(false))

Render a preview page with the embedded script tags:

	html, err := jsonld.RenderPage([]*jsonld.Document{doc}, jsonld.PageOptions{
		Title:        "Preview",
		TemplateName: "preview",
	})
*/
package jsonld
