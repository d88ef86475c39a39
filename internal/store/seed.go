package store

import "github.com/pinkdoor/guestguide-backend/internal/models"

// SeedGuides returns the starter content a fresh tenant gets: a populated
// home tab, a few purchasable add-ons, the service directory and the
// guest's own reservation info.
func SeedGuides() []models.GuideItem {
	all := models.AllProperties()
	preStay := []models.ReservationStage{models.StageBeforeCheckIn, models.StageStaying}
	staying := []models.ReservationStage{models.StageStaying}
	wholeStay := []models.ReservationStage{models.StageBeforeCheckIn, models.StageStaying, models.StagePostStay}

	return []models.GuideItem{
		{
			ID:               1,
			TenantID:         models.DefaultTenantID,
			Title:            "Welcome",
			ShortDescription: "Welcome message for guests",
			Content:          "We're so excited you're here! Use this guide to easily find information you might need during your stay. Need something else? Our team is here to help, don't hesitate to call or text us!",
			HeadImageURL:     "https://hebbkx1anhila5yf.public.blob.vercel-storage.com/image-KWJXU7PHtQCdESkqf45FKNdQ3t5E7s.png",
			TabCode:          models.TabHome,
			SectionName:      "Welcome",
			Category:         "welcome",
			SequenceNumber:   1,

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: preStay},
		},
		{
			ID:               2,
			TenantID:         models.DefaultTenantID,
			Title:            "Reservation Info",
			ShortDescription: "Details about your reservation",
			Content:          "Here you'll find all the important details about your reservation including check-in/out times, property address, and contact information.",
			TabCode:          models.TabHome,
			SectionName:      "Welcome",
			Category:         "welcome",
			SequenceNumber:   2,

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: preStay},
		},
		{
			ID:               3,
			TenantID:         models.DefaultTenantID,
			Title:            "Getting Here",
			ShortDescription: "Directions and transportation info",
			Content:          "Find detailed directions to the property, parking information, and local transportation options.",
			TabCode:          models.TabHome,
			SectionName:      "Welcome",
			Category:         "welcome",
			SequenceNumber:   3,

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: preStay},
		},
		{
			ID:               4,
			TenantID:         models.DefaultTenantID,
			Title:            "Access Code",
			ShortDescription: "Property access information",
			Content:          "Your access code is {{access_code}}. Use this code to enter the property. The code is active from your check-in time.",
			TabCode:          models.TabHome,
			SectionName:      "Access",
			Category:         "access",
			SequenceNumber:   1,

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: staying},
		},
		{
			ID:               5,
			TenantID:         models.DefaultTenantID,
			Title:            "Wifi",
			ShortDescription: "Internet connection details",
			Content:          "WiFi Network: {{wifi_network}}\nPassword: {{wifi_password}}\n\nFor any connectivity issues, please contact us.",
			TabCode:          models.TabHome,
			SectionName:      "Access",
			Category:         "access",
			SequenceNumber:   2,

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: staying},
		},
		{
			ID:               6,
			TenantID:         models.DefaultTenantID,
			Title:            "Pool Rules",
			ShortDescription: "Pool usage guidelines",
			Content:          "Please follow these pool rules for everyone's safety and enjoyment. Pool hours are 6 AM to 10 PM daily. No glass containers allowed.",
			TabCode:          models.TabHome,
			SectionName:      "Policy",
			Category:         "policy",
			SequenceNumber:   1,

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: staying},
		},
		{
			ID:               7,
			TenantID:         models.DefaultTenantID,
			Title:            "Early Check-in",
			ShortDescription: "Available for additional fee",
			Content:          "Early check-in is available starting at 12 PM for an additional $50 fee. Please contact us at least 24 hours in advance to arrange.",
			TabCode:          models.TabAddOn,
			SectionName:      "Premium Services",
			Category:         "addon",
			SequenceNumber:   1,
			PurchaseSettings: &models.PurchaseSettings{RateType: models.RateFixedPrice, Price: 50},

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: []models.ReservationStage{models.StageBeforeCheckIn}},
		},
		{
			ID:               8,
			TenantID:         models.DefaultTenantID,
			Title:            "Late Check-out",
			ShortDescription: "Extend your stay",
			Content:          "Late check-out until 2 PM is available for $30. Subject to availability. Please request by 9 AM on your departure day.",
			TabCode:          models.TabAddOn,
			SectionName:      "Premium Services",
			Category:         "addon",
			SequenceNumber:   2,
			PurchaseSettings: &models.PurchaseSettings{RateType: models.RateFixedPrice, Price: 30},

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: staying},
		},
		{
			ID:               9,
			TenantID:         models.DefaultTenantID,
			Title:            "Extra Cleaning",
			ShortDescription: "Deep cleaning service",
			Content:          "Additional deep cleaning service available for $75. Includes detailed cleaning of all areas and fresh linens.",
			TabCode:          models.TabAddOn,
			SectionName:      "Cleaning Services",
			Category:         "addon",
			SequenceNumber:   1,
			PurchaseSettings: &models.PurchaseSettings{RateType: models.RateFixedPrice, Price: 75},

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: staying},
		},
		{
			ID:               10,
			TenantID:         models.DefaultTenantID,
			Title:            "Concierge",
			ShortDescription: "24/7 guest assistance",
			Content:          "Our concierge service is available 24/7 to help with restaurant reservations, local recommendations, and any questions you may have.",
			TabCode:          models.TabService,
			SectionName:      "Guest Services",
			Category:         "service",
			SequenceNumber:   1,

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: staying},
		},
		{
			ID:               11,
			TenantID:         models.DefaultTenantID,
			Title:            "Housekeeping",
			ShortDescription: "Daily cleaning service",
			Content:          "Daily housekeeping service is available upon request. Please place the service card on your door by 9 AM.",
			TabCode:          models.TabService,
			SectionName:      "Guest Services",
			Category:         "service",
			SequenceNumber:   2,

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: staying},
		},
		{
			ID:               12,
			TenantID:         models.DefaultTenantID,
			Title:            "Maintenance",
			ShortDescription: "Property maintenance support",
			Content:          "For any maintenance issues, please contact us immediately. Our maintenance team is available 24/7 for urgent matters.",
			TabCode:          models.TabService,
			SectionName:      "Support",
			Category:         "service",
			SequenceNumber:   1,

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: staying},
		},
		{
			ID:               13,
			TenantID:         models.DefaultTenantID,
			Title:            "Contact Information",
			ShortDescription: "How to reach us",
			Content:          "Phone: {{host_phone}}\nEmail: {{support_email}}\nEmergency: {{emergency_phone}}\n\nWe're here to help 24/7!",
			TabCode:          models.TabMyInfo,
			SectionName:      "Contact",
			Category:         "info",
			SequenceNumber:   1,

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: wholeStay},
		},
		{
			ID:               14,
			TenantID:         models.DefaultTenantID,
			Title:            "Property Address",
			ShortDescription: "Full property details",
			Content:          "{{property_name}}\n{{listing_address}}\n\nParking: Available on-site\nUnit: 2A",
			TabCode:          models.TabMyInfo,
			SectionName:      "Property Details",
			Category:         "info",
			SequenceNumber:   1,

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: wholeStay},
		},
		{
			ID:               15,
			TenantID:         models.DefaultTenantID,
			Title:            "Check-in/out Times",
			ShortDescription: "Important timing information",
			Content:          "Check-in: {{checkin_time}}\nCheck-out: {{checkout_time}}\n\nEarly check-in and late check-out available for additional fees.",
			TabCode:          models.TabMyInfo,
			SectionName:      "Booking Details",
			Category:         "info",
			SequenceNumber:   1,

			FilterByListingTags:      all,
			FilterByReservationStage: models.ReservationStageFilter{Stages: wholeStay},
		},
	}
}
