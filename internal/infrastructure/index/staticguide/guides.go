package staticguide

var builtinGuides = []guide{
	{
		id:           "guide-companies-law",
		title:        "Saudi Companies Law Overview",
		documentType: "guide",
		jurisdiction: "Saudi Arabia",
		practiceArea: "corporate",
		fileName:     "companies_law_overview.md",
		date:         "2024-09-15",
		content: "The Saudi Companies Law governs the formation, governance and " +
			"dissolution of commercial entities. Limited liability companies require " +
			"at least one shareholder and must register with the Ministry of Commerce. " +
			"Joint stock companies need a minimum capital of five hundred thousand " +
			"riyals and a board of directors of at least three members. Annual " +
			"financial statements must be filed and audited for most entity types.",
	},
	{
		id:           "guide-labor-law",
		title:        "Employment and Labor Law Essentials",
		documentType: "guide",
		jurisdiction: "Saudi Arabia",
		practiceArea: "employment",
		fileName:     "labor_law_essentials.md",
		date:         "2024-09-15",
		content: "The Labor Law regulates employment contracts, working hours, leave " +
			"and end of service benefits. The standard work week is fortyeight hours " +
			"with overtime paid at one and a half times the normal wage. Employees are " +
			"entitled to twentyone days of paid annual leave, rising to thirty days " +
			"after five years of service. End of service awards accrue at half a month " +
			"per year for the first five years and a full month thereafter.",
	},
	{
		id:           "guide-foreign-investment",
		title:        "Foreign Investment Licensing Guide",
		documentType: "guide",
		jurisdiction: "Saudi Arabia",
		practiceArea: "investment",
		fileName:     "foreign_investment_guide.md",
		date:         "2024-10-01",
		content: "Foreign investors must obtain a license from the Ministry of " +
			"Investment before conducting business. Most sectors permit full foreign " +
			"ownership, though a negative list excludes certain activities. Licensed " +
			"foreign entities receive national treatment for most regulatory purposes " +
			"and may own real estate needed for their licensed activity.",
	},
	{
		id:           "guide-commercial-courts",
		title:        "Commercial Courts and Dispute Resolution",
		documentType: "guide",
		jurisdiction: "Saudi Arabia",
		practiceArea: "litigation",
		fileName:     "commercial_disputes.md",
		date:         "2024-10-01",
		content: "Commercial disputes are heard by specialized commercial courts " +
			"under the Commercial Courts Law. Claims must generally be filed through " +
			"the Najiz electronic platform. Arbitration is recognized under the " +
			"Arbitration Law, and awards are enforced through the enforcement courts " +
			"subject to public policy review. Mediation is encouraged before filing.",
	},
	{
		id:           "guide-vat",
		title:        "Value Added Tax Compliance Guide",
		documentType: "guide",
		jurisdiction: "Saudi Arabia",
		practiceArea: "tax",
		fileName:     "vat_compliance.md",
		date:         "2024-11-20",
		content: "Value added tax applies at a standard rate of fifteen percent on " +
			"most supplies of goods and services. Businesses with annual taxable " +
			"supplies above three hundred seventyfive thousand riyals must register " +
			"with the Zakat, Tax and Customs Authority. Returns are filed monthly or " +
			"quarterly depending on turnover, and invoices must follow the electronic " +
			"invoicing rules.",
	},
	{
		id:           "guide-data-protection",
		title:        "Personal Data Protection Law Summary",
		documentType: "guide",
		jurisdiction: "Saudi Arabia",
		practiceArea: "privacy",
		fileName:     "pdpl_summary.md",
		date:         "2024-11-20",
		content: "The Personal Data Protection Law requires a lawful basis for " +
			"processing personal data and grants data subjects rights of access, " +
			"correction and deletion. Controllers must register processing activities " +
			"and report breaches to the competent authority within seventytwo hours. " +
			"Cross border transfers require safeguards or an adequacy decision.",
	},
	{
		id:           "guide-gcc-customs",
		title:        "GCC Customs Union Basics",
		documentType: "guide",
		jurisdiction: "GCC",
		practiceArea: "trade",
		fileName:     "gcc_customs.md",
		date:         "2024-12-05",
		content: "The Gulf Cooperation Council customs union applies a common " +
			"external tariff of five percent on most imported goods. Goods cleared in " +
			"one member state circulate freely within the union. Certificates of " +
			"origin determine eligibility for preferential treatment under the " +
			"unified economic agreement.",
	},
}
