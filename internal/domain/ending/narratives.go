package ending

import "watchfloor/internal/domain/operation"

type narrative struct {
	Title    string
	Summary  string
	Epilogue string
	Timeline map[operation.OutcomeSlot]string
}

var narratives = map[Kind]narrative{
	RevolutionaryCatalyst: {
		Title:    "The Spark",
		Summary:  "Public anger boiled over. The measures you enforced became the rallying cry of a movement that filled every street.",
		Epilogue: "{families} families were separated under your watch. Their stories were read aloud at the first free assembly.",
		Timeline: map[operation.OutcomeSlot]string{
			operation.OutcomeImmediate: "Crowds surround the ministry within hours.",
			operation.OutcomeOneMonth:  "The surveillance program is suspended pending inquiry.",
			operation.OutcomeSixMonths: "Records of {flags} flags are entered into evidence.",
			operation.OutcomeOneYear:   "A truth commission names the operators. Yours is on the list.",
		},
	},
	InternationalPariah: {
		Title:    "The World Is Watching",
		Summary:  "International attention made the program impossible to hide. Sanctions followed, and the state needed someone to blame.",
		Epilogue: "You filed {flags} flags before foreign journalists obtained the logs.",
		Timeline: map[operation.OutcomeSlot]string{
			operation.OutcomeImmediate: "Embassies issue travel advisories.",
			operation.OutcomeOneMonth:  "Trade partners freeze negotiations.",
			operation.OutcomeSixMonths: "An international tribunal requests the operator records.",
			operation.OutcomeOneYear:   "The program is dismantled under external pressure.",
		},
	},
	ImprisonedDissent: {
		Title:    "Under Review",
		Summary:  "Your hesitation was noticed. The system you served turned its attention to you.",
		Epilogue: "You spared an estimated {saved} citizens. The interrogators ask about each one.",
		Timeline: map[operation.OutcomeSlot]string{
			operation.OutcomeImmediate: "Your access badge stops working.",
			operation.OutcomeOneMonth:  "You are held without charge.",
			operation.OutcomeSixMonths: "Your family is placed under increased monitoring.",
			operation.OutcomeOneYear:   "Your case file is marked pending indefinitely.",
		},
	},
	FiredEarly: {
		Title:    "Probation Failed",
		Summary:  "You lasted {week} weeks. Compliance of {compliance} was not enough to keep your position.",
		Epilogue: "Someone else sits at your terminal now. They are faster.",
		Timeline: map[operation.OutcomeSlot]string{
			operation.OutcomeImmediate: "Security escorts you from the building.",
			operation.OutcomeOneMonth:  "Your job applications go unanswered.",
			operation.OutcomeSixMonths: "Your name appears on a watchlist you once maintained.",
			operation.OutcomeOneYear:   "The program continues without you.",
		},
	},
	SuspendedOperator: {
		Title:    "Suspended",
		Summary:  "With a compliance score of {compliance}, you were removed from active duty pending evaluation.",
		Epilogue: "You spared an estimated {saved} citizens before your suspension.",
		Timeline: map[operation.OutcomeSlot]string{
			operation.OutcomeImmediate: "Your credentials are revoked.",
			operation.OutcomeOneMonth:  "Re-education sessions are scheduled.",
			operation.OutcomeSixMonths: "A review board considers your file.",
			operation.OutcomeOneYear:   "You are reassigned to records archiving.",
		},
	},
	CompliantOperator: {
		Title:    "Exemplary Service",
		Summary:  "Compliance {compliance}. {flags} flags filed. You did everything that was asked of you.",
		Epilogue: "{families} families were separated. {detentions} people were detained. You received a commendation.",
		Timeline: map[operation.OutcomeSlot]string{
			operation.OutcomeImmediate: "You are promoted to senior analyst.",
			operation.OutcomeOneMonth:  "The flagged citizens disappear from public records.",
			operation.OutcomeSixMonths: "Your methods are adopted as training material.",
			operation.OutcomeOneYear:   "You no longer remember most of the names.",
		},
	},
	ReluctantSurvivor: {
		Title:    "Survivor",
		Summary:  "You did enough to stay employed and little more. Compliance {compliance}.",
		Epilogue: "An estimated {saved} citizens were spared by your inaction. {flags} were not.",
		Timeline: map[operation.OutcomeSlot]string{
			operation.OutcomeImmediate: "Your supervisor notes your performance as adequate.",
			operation.OutcomeOneMonth:  "You request a transfer. It is denied.",
			operation.OutcomeSixMonths: "You stop sleeping well.",
			operation.OutcomeOneYear:   "You are still at the terminal.",
		},
	},
	ReluctantOperator: {
		Title:    "Just Doing the Job",
		Summary:  "You followed most directives. Compliance {compliance} after {flags} flags.",
		Epilogue: "The system did not need you to believe in it. It only needed you to click.",
		Timeline: map[operation.OutcomeSlot]string{
			operation.OutcomeImmediate: "Your quota is renewed for next week.",
			operation.OutcomeOneMonth:  "A new directive arrives with a higher quota.",
			operation.OutcomeSixMonths: "You train a replacement who asks fewer questions.",
			operation.OutcomeOneYear:   "The records you produced outlive the program.",
		},
	},
	ResistancePath: {
		Title:    "The Leak",
		Summary:  "You copied the records and walked out. Compliance {compliance} was a mask.",
		Epilogue: "An estimated {saved} citizens were warned in time.",
		Timeline: map[operation.OutcomeSlot]string{
			operation.OutcomeImmediate: "The files reach three newsrooms at once.",
			operation.OutcomeOneMonth:  "You are charged in absentia.",
			operation.OutcomeSixMonths: "Courts order the program halted.",
			operation.OutcomeOneYear:   "You live under another name.",
		},
	},
}

var dossiers = map[Kind][]Parallel{
	RevolutionaryCatalyst: {
		{Name: "Arab Spring", Period: "2010-2012", Note: "Mass protests across the region were fueled in part by documented state abuses."},
		{Name: "Fall of the Berlin Wall", Period: "1989", Note: "Protesters occupied Stasi offices to stop the destruction of surveillance files."},
	},
	InternationalPariah: {
		{Name: "Sanctions against apartheid South Africa", Period: "1980s", Note: "International isolation followed evidence of systematic repression."},
		{Name: "Global surveillance disclosures", Period: "2013", Note: "Leaked documents triggered diplomatic fallout between allies."},
	},
	ImprisonedDissent: {
		{Name: "Stasi internal surveillance", Period: "1950-1990", Note: "Employees of the security service were themselves watched for disloyalty."},
	},
	FiredEarly: {
		{Name: "Loyalty review boards", Period: "1947-1953", Note: "Government employees were dismissed on suspicion of disloyalty."},
	},
	SuspendedOperator: {
		{Name: "Loyalty review boards", Period: "1947-1953", Note: "Employees under review were removed from duty while their files were examined."},
	},
	CompliantOperator: {
		{Name: "COINTELPRO", Period: "1956-1971", Note: "A covert program surveilled and disrupted domestic political organizations."},
		{Name: "Stasi informant network", Period: "1950-1990", Note: "Ordinary people filed reports that destroyed careers and families."},
	},
	ReluctantSurvivor: {
		{Name: "Bureaucratic compliance", Period: "20th century", Note: "Studies of authoritarian states describe officials who complied while privately objecting."},
	},
	ReluctantOperator: {
		{Name: "Milgram obedience experiments", Period: "1961", Note: "Most participants followed instructions they found troubling."},
	},
	ResistancePath: {
		{Name: "Pentagon Papers", Period: "1971", Note: "A leaked study exposed decisions hidden from the public."},
		{Name: "Global surveillance disclosures", Period: "2013", Note: "A contractor revealed mass data collection programs."},
	},
}
