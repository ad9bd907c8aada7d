package service

import "github.com/makeitweb/studio-backend/internal/query"

// Per-entity sort/filter allow-lists: API field name -> database column.
// Anything outside these maps is rejected by the query translator.
var (
	CategoryFields = query.Fields{
		"id":        "id",
		"title":     "title",
		"createdAt": "created_at",
	}

	DeveloperFields = query.Fields{
		"id":        "id",
		"name":      "name",
		"position":  "position",
		"createdAt": "created_at",
	}

	CaseFields = query.Fields{
		"id":        "id",
		"name":      "name",
		"price":     "price",
		"website":   "website",
		"date":      "date",
		"createdAt": "created_at",
	}

	ShopFields = query.Fields{
		"id":        "id",
		"name":      "name",
		"price":     "price",
		"website":   "website",
		"createdAt": "created_at",
	}

	ProductFields = query.Fields{
		"id":           "id",
		"name":         "name",
		"price":        "price",
		"description":  "description",
		"organization": "organization",
		"website":      "website",
		"categoryId":   "category_id",
		"createdAt":    "created_at",
	}

	DiscussionFields = query.Fields{
		"id":        "id",
		"name":      "name",
		"phone":     "phone",
		"email":     "email",
		"company":   "company",
		"budget":    "budget",
		"createdAt": "created_at",
	}

	UserFields = query.Fields{
		"id":        "id",
		"login":     "login",
		"email":     "email",
		"name":      "name",
		"createdAt": "created_at",
	}
)
