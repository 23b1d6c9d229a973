package content

func quizQuestions() []QuizQuestion {
	return []QuizQuestion{
		{
			ID:       1,
			Question: "What is the normal rate for chest compressions during CPR?",
			Options: []string{
				"60-80 compressions per minute",
				"100-120 compressions per minute",
				"140-160 compressions per minute",
				"As fast as possible",
			},
			Correct:     1,
			Explanation: "The recommended rate is 100-120 compressions per minute to maintain adequate blood circulation.",
			Category:    "CPR",
		},
		{
			ID:       2,
			Question: "How deep should chest compressions be for an adult?",
			Options: []string{
				"At least 2 inches (5 cm)",
				"1 inch (2.5 cm)",
				"3-4 inches (7-10 cm)",
				"As deep as possible",
			},
			Correct:     0,
			Explanation: "Compressions should be at least 2 inches (5 cm) deep but no more than 2.4 inches (6 cm).",
			Category:    "CPR",
		},
		{
			ID:       3,
			Question: "What should you do if someone is choking but can still cough and speak?",
			Options: []string{
				"Perform abdominal thrusts immediately",
				"Give back blows immediately",
				"Encourage them to keep coughing",
				"Start CPR",
			},
			Correct:     2,
			Explanation: "A person who can cough and speak has a partial obstruction; coughing is the most effective way to clear it.",
			Category:    "Choking",
		},
		{
			ID:       4,
			Question: "What is the primary treatment for severe external bleeding?",
			Options: []string{
				"Apply a tourniquet immediately",
				"Apply direct pressure to the wound",
				"Rinse the wound with water",
				"Elevate the limb only",
			},
			Correct:     1,
			Explanation: "Direct pressure with a clean cloth is the first and most effective step to control severe bleeding.",
			Category:    "Bleeding Control",
		},
		{
			ID:       5,
			Question: "When checking for consciousness, what should you do?",
			Options: []string{
				"Shake the person vigorously",
				"Pour water on their face",
				"Tap their shoulders and shout",
				"Wait for them to wake up",
			},
			Correct:     2,
			Explanation: "Tap the shoulders firmly and shout to check responsiveness without risking further injury.",
			Category:    "Basic Assessment",
		},
	}
}

func flashcards() []Flashcard {
	return []Flashcard{
		{
			ID:       1,
			Front:    "What is the first step when approaching an unconscious person?",
			Back:     "Check for responsiveness by tapping their shoulders and shouting 'Are you okay?' while ensuring your own safety first.",
			Category: "Basic Assessment",
		},
		{
			ID:       2,
			Front:    "What does CPR stand for and when should it be used?",
			Back:     "Cardiopulmonary Resuscitation. Used when someone is unresponsive and not breathing normally or at all.",
			Category: "CPR",
		},
		{
			ID:       3,
			Front:    "What is the correct hand position for chest compressions in adults?",
			Back:     "Place the heel of one hand on the center of the chest between the nipples, place the other hand on top with fingers interlaced.",
			Category: "CPR",
		},
		{
			ID:       4,
			Front:    "How do you treat a severe bleeding wound?",
			Back:     "Apply direct pressure with a clean cloth, elevate the wound above heart level if possible, and call emergency services.",
			Category: "Bleeding Control",
		},
		{
			ID:       5,
			Front:    "What are the signs of shock in a casualty?",
			Back:     "Pale, cold, clammy skin; rapid weak pulse; shallow breathing; restlessness or confusion; thirst; nausea.",
			Category: "Shock",
		},
	}
}

func videos() []Video {
	return []Video{
		{ID: 1, Title: "Basic CPR Techniques", Description: "Step-by-step adult CPR: compressions, rescue breaths and AED use.", Duration: "8 min", Category: "CPR"},
		{ID: 2, Title: "Heimlich Maneuver", Description: "Clearing an airway obstruction in a conscious adult.", Duration: "5 min", Category: "Choking"},
		{ID: 3, Title: "Treating Burns and Scalds", Description: "Cooling, covering and assessing burn severity.", Duration: "6 min", Category: "Burns"},
		{ID: 4, Title: "Wound Care and Bandaging", Description: "Cleaning wounds and applying pressure bandages.", Duration: "7 min", Category: "Wounds"},
		{ID: 5, Title: "Managing Shock", Description: "Recognizing shock and positioning the casualty.", Duration: "6 min", Category: "Emergency"},
		{ID: 6, Title: "Fracture Support", Description: "Immobilizing suspected fractures before help arrives.", Duration: "9 min", Category: "Fractures"},
	}
}

func guides() []Guide {
	return []Guide{
		{
			ID:      1,
			Title:   "Primary Survey (DRABC)",
			Summary: "The structured first assessment of any casualty.",
			Sections: []string{
				"Danger: check the scene is safe",
				"Response: tap shoulders and shout",
				"Airway: open with head tilt, chin lift",
				"Breathing: look, listen and feel for up to 10 seconds",
				"Circulation: check for severe bleeding",
			},
		},
		{
			ID:      2,
			Title:   "CPR and AED",
			Summary: "Chain of survival for cardiac arrest.",
			Sections: []string{
				"Call emergency services before starting",
				"30 compressions at 100-120 per minute",
				"2 rescue breaths if trained",
				"Attach an AED as soon as one is available",
			},
		},
		{
			ID:      3,
			Title:   "Bleeding and Shock",
			Summary: "Controlling blood loss and supporting circulation.",
			Sections: []string{
				"Direct pressure with a clean dressing",
				"Elevate the injury where possible",
				"Lay the casualty down and raise the legs",
				"Keep the casualty warm and reassured",
			},
		},
		{
			ID:      4,
			Title:   "Burns",
			Summary: "Immediate care for thermal injuries.",
			Sections: []string{
				"Cool under running water for 20 minutes",
				"Remove jewellery before swelling starts",
				"Cover loosely with cling film",
				"Never apply creams or ice",
			},
		},
	}
}
