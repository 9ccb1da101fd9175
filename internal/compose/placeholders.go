package compose

import (
	"autopage/internal/extract"
	"autopage/internal/models/store_models"
)

// sectionData fills the section with extracted values where they exist and
// with editable placeholder content everywhere else, so a freshly composed
// page renders complete.
func sectionData(st store_models.SectionType, meta extract.Result) map[string]interface{} {
	switch st {
	case store_models.SectionAbout:
		text := meta.Description
		if text == "" {
			text = "ספרו כאן על העסק שלכם, מה מייחד אתכם ולמה כדאי לבחור בכם."
		}
		return map[string]interface{}{
			"title":    "קצת עלינו",
			"text":     text,
			"features": []interface{}{"מקצועיות", "מהירות", "איכות"},
		}
	case store_models.SectionProducts:
		return map[string]interface{}{
			"title": "המוצרים שלנו",
		}
	case store_models.SectionGallery:
		return map[string]interface{}{
			"title":  "גלריה",
			"images": []interface{}{},
		}
	case store_models.SectionServices:
		return map[string]interface{}{
			"title": "השירותים שלנו",
			"items": []interface{}{
				map[string]interface{}{"name": "שירות ראשון", "description": "תיאור קצר של השירות"},
				map[string]interface{}{"name": "שירות שני", "description": "תיאור קצר של השירות"},
				map[string]interface{}{"name": "שירות שלישי", "description": "תיאור קצר של השירות"},
			},
		}
	case store_models.SectionPricing:
		return map[string]interface{}{
			"title": "מחירון",
			"plans": []interface{}{
				map[string]interface{}{"name": "בסיסי", "price": "99", "features": []interface{}{"תכונה ראשונה", "תכונה שנייה"}},
				map[string]interface{}{"name": "מתקדם", "price": "199", "features": []interface{}{"כל מה שבבסיסי", "תכונה שלישית"}, "highlighted": true},
				map[string]interface{}{"name": "פרימיום", "price": "299", "features": []interface{}{"כל מה שבמתקדם", "ליווי אישי"}},
			},
		}
	case store_models.SectionTeam:
		return map[string]interface{}{
			"title": "הצוות שלנו",
			"members": []interface{}{
				map[string]interface{}{"name": "שם מלא", "role": "תפקיד"},
				map[string]interface{}{"name": "שם מלא", "role": "תפקיד"},
				map[string]interface{}{"name": "שם מלא", "role": "תפקיד"},
			},
		}
	case store_models.SectionVideo:
		return map[string]interface{}{
			"title": "סרטון",
			"url":   "",
		}
	case store_models.SectionTestimonials:
		return map[string]interface{}{
			"title": "לקוחות ממליצים",
			"items": []interface{}{
				map[string]interface{}{"name": "לקוח מרוצה", "text": "שירות מעולה, ממליץ בחום!"},
				map[string]interface{}{"name": "לקוחה מרוצה", "text": "מקצועיים ואדיבים, אחזור שוב."},
				map[string]interface{}{"name": "לקוח קבוע", "text": "התוצאה עלתה על כל הציפיות."},
			},
		}
	case store_models.SectionFAQ:
		return map[string]interface{}{
			"title": "שאלות נפוצות",
			"items": []interface{}{
				map[string]interface{}{"question": "איך מזמינים?", "answer": "משאירים פרטים ואנחנו חוזרים אליכם."},
				map[string]interface{}{"question": "מה זמני האספקה?", "answer": "עד 3 ימי עסקים."},
				map[string]interface{}{"question": "האם יש אחריות?", "answer": "כן, אחריות מלאה על כל המוצרים."},
			},
		}
	case store_models.SectionAppointments:
		return map[string]interface{}{
			"title": "קביעת תור",
		}
	case store_models.SectionContact:
		return map[string]interface{}{
			"title":   "צרו קשר",
			"phone":   meta.Contact.Phone,
			"email":   meta.Contact.Email,
			"city":    meta.Contact.City,
			"address": meta.Contact.Address,
			"socialLinks": map[string]interface{}{
				"facebook":  "",
				"instagram": "",
				"whatsapp":  "",
			},
		}
	default:
		return map[string]interface{}{}
	}
}
