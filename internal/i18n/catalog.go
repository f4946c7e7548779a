package i18n

// catalog holds the per-locale message tables. Keys follow the
// snake_case identifiers used throughout the handlers.
var catalog = map[string]map[string]string{
	"en": {
		// auth
		"please_include_all_auth_fields": "Please include username, email and password",
		"user_already_exists_email":      "A user with this email already exists",
		"username_already_taken":         "This username is already taken",
		"user_registered_successfully":   "User registered successfully",
		"invalid_credentials":            "Invalid credentials",
		"login_successful":               "Login successful",
		"profile_fetched_successfully":   "Profile fetched successfully",
		"profile_updated_successfully":   "Profile updated successfully",
		"email_already_in_use":           "This email is already in use",
		"user_not_found_general":         "User not found",
		"please_provide_passwords":       "Please provide current and new password",
		"invalid_current_password":       "Current password is incorrect",
		"password_too_short":             "Password must be at least 6 characters long",
		"password_updated_successfully":  "Password updated successfully",

		// auth middleware
		"not_authorized_no_token":       "Not authorized, no token provided",
		"not_authorized_token_failed":   "Not authorized, token verification failed",
		"not_authorized_token_expired":  "Not authorized, token has expired",
		"not_authorized_user_not_found": "Not authorized, user no longer exists",

		// recipes
		"please_include_all_required_recipe_fields": "Please include name, description, ingredients, instructions, cooking time, servings and category",
		"ingredients_must_be_array":                 "At least one ingredient is required",
		"instructions_must_be_array":                "At least one instruction step is required",
		"invalid_category":                          "Unknown recipe category: %s",
		"invalid_recipe_id_format":                  "Invalid recipe ID format",
		"recipe_not_found":                          "Recipe not found",
		"recipe_created_successfully":               "Recipe created successfully",
		"recipes_fetched_successfully":              "Recipes fetched successfully",
		"recipe_fetched_successfully":               "Recipe fetched successfully",
		"recipe_updated_successfully":               "Recipe updated successfully",
		"recipe_deleted_successfully":               "Recipe deleted successfully",
		"not_authorized_update_recipe":              "Not authorized to update this recipe",
		"not_authorized_delete_recipe":              "Not authorized to delete this recipe",
		"please_provide_ingredients":                "Please provide at least one ingredient to search for",

		// ratings
		"please_provide_recipe_and_rating": "Please provide recipe ID and rating value",
		"rating_value_out_of_range":        "Rating must be between 1 and 5",
		"comment_too_long":                 "Comment cannot be more than 500 characters",
		"already_rated_recipe":             "You have already rated this recipe",
		"invalid_rating_id_format":         "Invalid rating ID format",
		"rating_not_found":                 "Rating not found",
		"rating_submitted_successfully":    "Rating submitted successfully",
		"ratings_fetched_successfully":     "Ratings fetched successfully",
		"no_ratings_found":                 "No ratings found for this recipe",
		"rating_updated_successfully":      "Rating updated successfully",
		"rating_deleted_successfully":      "Rating deleted successfully",
		"not_authorized_update_rating":     "Not authorized to update this rating",
		"not_authorized_delete_rating":     "Not authorized to delete this rating",

		// meal planner
		"invalid_week_start":             "Invalid or missing weekStart date, expected YYYY-MM-DD",
		"invalid_meal_type":              "Unknown meal type: %s",
		"invalid_plan_date":              "Invalid meal plan date: %s",
		"date_outside_week":              "Date %s is outside the requested week",
		"meal_plan_fetched_successfully": "Meal plan fetched successfully",
		"meal_plan_saved_successfully":   "Meal plan saved successfully",
		"meal_plan_entry_not_found":      "Meal plan entry not found",
		"meal_plan_entry_removed":        "Meal plan entry removed successfully",
		"not_authorized_remove_entry":    "Not authorized to remove this meal plan entry",

		// generic
		"server_error": "Internal server error",
	},
	"de": {
		// auth
		"please_include_all_auth_fields": "Bitte Benutzername, E-Mail und Passwort angeben",
		"user_already_exists_email":      "Ein Benutzer mit dieser E-Mail existiert bereits",
		"username_already_taken":         "Dieser Benutzername ist bereits vergeben",
		"user_registered_successfully":   "Benutzer erfolgreich registriert",
		"invalid_credentials":            "Ungültige Anmeldedaten",
		"login_successful":               "Anmeldung erfolgreich",
		"profile_fetched_successfully":   "Profil erfolgreich geladen",
		"profile_updated_successfully":   "Profil erfolgreich aktualisiert",
		"email_already_in_use":           "Diese E-Mail wird bereits verwendet",
		"user_not_found_general":         "Benutzer nicht gefunden",
		"please_provide_passwords":       "Bitte aktuelles und neues Passwort angeben",
		"invalid_current_password":       "Das aktuelle Passwort ist falsch",
		"password_too_short":             "Das Passwort muss mindestens 6 Zeichen lang sein",
		"password_updated_successfully":  "Passwort erfolgreich aktualisiert",

		// auth middleware
		"not_authorized_no_token":       "Nicht autorisiert, kein Token übermittelt",
		"not_authorized_token_failed":   "Nicht autorisiert, Token-Prüfung fehlgeschlagen",
		"not_authorized_token_expired":  "Nicht autorisiert, Token ist abgelaufen",
		"not_authorized_user_not_found": "Nicht autorisiert, Benutzer existiert nicht mehr",

		// recipes
		"please_include_all_required_recipe_fields": "Bitte Name, Beschreibung, Zutaten, Anleitung, Kochzeit, Portionen und Kategorie angeben",
		"ingredients_must_be_array":                 "Mindestens eine Zutat ist erforderlich",
		"instructions_must_be_array":                "Mindestens ein Zubereitungsschritt ist erforderlich",
		"invalid_category":                          "Unbekannte Rezeptkategorie: %s",
		"invalid_recipe_id_format":                  "Ungültiges Rezept-ID-Format",
		"recipe_not_found":                          "Rezept nicht gefunden",
		"recipe_created_successfully":               "Rezept erfolgreich erstellt",
		"recipes_fetched_successfully":              "Rezepte erfolgreich geladen",
		"recipe_fetched_successfully":               "Rezept erfolgreich geladen",
		"recipe_updated_successfully":               "Rezept erfolgreich aktualisiert",
		"recipe_deleted_successfully":               "Rezept erfolgreich gelöscht",
		"not_authorized_update_recipe":              "Keine Berechtigung, dieses Rezept zu bearbeiten",
		"not_authorized_delete_recipe":              "Keine Berechtigung, dieses Rezept zu löschen",
		"please_provide_ingredients":                "Bitte mindestens eine Zutat für die Suche angeben",

		// ratings
		"please_provide_recipe_and_rating": "Bitte Rezept-ID und Bewertung angeben",
		"rating_value_out_of_range":        "Die Bewertung muss zwischen 1 und 5 liegen",
		"comment_too_long":                 "Der Kommentar darf höchstens 500 Zeichen lang sein",
		"already_rated_recipe":             "Sie haben dieses Rezept bereits bewertet",
		"invalid_rating_id_format":         "Ungültiges Bewertungs-ID-Format",
		"rating_not_found":                 "Bewertung nicht gefunden",
		"rating_submitted_successfully":    "Bewertung erfolgreich abgegeben",
		"ratings_fetched_successfully":     "Bewertungen erfolgreich geladen",
		"no_ratings_found":                 "Keine Bewertungen für dieses Rezept gefunden",
		"rating_updated_successfully":      "Bewertung erfolgreich aktualisiert",
		"rating_deleted_successfully":      "Bewertung erfolgreich gelöscht",
		"not_authorized_update_rating":     "Keine Berechtigung, diese Bewertung zu bearbeiten",
		"not_authorized_delete_rating":     "Keine Berechtigung, diese Bewertung zu löschen",

		// meal planner
		"invalid_week_start":             "Ungültiges oder fehlendes weekStart-Datum, erwartet YYYY-MM-DD",
		"invalid_meal_type":              "Unbekannte Mahlzeit: %s",
		"invalid_plan_date":              "Ungültiges Datum im Essensplan: %s",
		"date_outside_week":              "Das Datum %s liegt außerhalb der angefragten Woche",
		"meal_plan_fetched_successfully": "Essensplan erfolgreich geladen",
		"meal_plan_saved_successfully":   "Essensplan erfolgreich gespeichert",
		"meal_plan_entry_not_found":      "Essensplan-Eintrag nicht gefunden",
		"meal_plan_entry_removed":        "Essensplan-Eintrag erfolgreich entfernt",
		"not_authorized_remove_entry":    "Keine Berechtigung, diesen Essensplan-Eintrag zu entfernen",

		// generic
		"server_error": "Interner Serverfehler",
	},
}
