package taxonomy

// assetCategories is the full asset catalog. Order is presentation order.
var assetCategories = []category{
	cat("Cash & Cash-like",
		sub("Cash (local currency)",
			text("bank", "Bank / provider"),
			choice("account_type", "Account type", "Current", "Savings"),
			text("account_nickname", "Account nickname"),
			text("account_number", "Account number (masked)"),
			number("interest_rate", "Interest rate (%)"),
			choice("liquidity", "Liquidity", "Instant", "1-3 days", "Term"),
		),
		sub("Cash (foreign currency)",
			text("bank", "Bank / provider"),
			text("country", "Country"),
			text("currency_held", "Currency held"),
			text("account_nickname", "Account nickname"),
		),
		sub("Savings / Deposit account",
			text("bank", "Bank / provider"),
			choice("account_type", "Account type", "Savings", "Fixed/Term"),
			number("tenor", "Tenor / lock-in (months)"),
			date("maturity_date", "Maturity date"),
			number("interest_rate", "Interest rate (%)"),
		),
		sub("Money market / cash fund",
			text("provider", "Fund / provider"),
			text("isin", "ISIN / code"),
		),
	),
	cat("Listed Investments",
		sub("Direct stocks / equities",
			text("ticker", "Ticker"),
			text("exchange", "Exchange / market"),
			text("broker", "Broker / platform"),
			number("shares", "Number of shares"),
			number("purchase_price", "Average purchase price per share"),
			date("purchase_date", "Main purchase date"),
			number("current_price", "Current price per share"),
		),
		sub("Index funds / ETFs",
			text("ticker", "Ticker"),
			text("exchange", "Exchange"),
			number("units", "Units held"),
			number("purchase_price", "Average purchase price per unit"),
			number("current_price", "Current price per unit"),
		),
		sub("Mutual funds / unit trusts",
			text("fund_name", "Fund name"),
			text("isin", "ISIN / code"),
			number("units", "Units held"),
			number("nav", "Latest NAV per unit"),
			date("statement_date", "Latest statement date"),
		),
		sub("REITs",
			text("ticker", "Ticker"),
			text("exchange", "Exchange"),
			number("units", "Units held"),
			number("current_price", "Current price per unit"),
			number("yield_pct", "Distribution yield (%)"),
		),
	),
	cat("Real Estate & Land",
		sub("Primary residence",
			text("country", "Country"),
			text("city", "City/Region"),
			text("address", "Full address"),
			text("registration_no", "Title / registration / survey number"),
			choice("property_type", "Property type", "Condo", "House", "Apartment", "Other"),
			choice("tenure", "Tenure", "Freehold", "99-year", "Leasehold", "Other"),
			number("area_sqft", "Area (sq ft)"),
			date("acquisition_date", "Acquisition date"),
			number("purchase_price", "Purchase price"),
		),
		sub("Investment property",
			text("country", "Country"),
			text("city", "City/Region"),
			text("address", "Full address"),
			text("registration_no", "Title / registration / survey number"),
			choice("property_type", "Property type", "Condo", "Shop", "Office", "Warehouse", "Other"),
			choice("tenure", "Tenure", "Freehold", "99-year", "Leasehold", "Other"),
			number("area_sqft", "Area (sq ft)"),
			date("acquisition_date", "Acquisition date"),
			number("purchase_price", "Purchase price"),
			number("annual_rent", "Annual gross rent"),
		),
		sub("Land plot",
			text("country", "Country"),
			text("city", "City/Region"),
			text("location_desc", "Location description"),
			text("survey_no", "Survey / plot number"),
			number("area_sqft", "Area (sq ft)"),
		),
	),
	cat("Retirement & Employment-linked",
		sub("Public pension / provident",
			text("scheme_name", "Scheme name (e.g. CPF, EPF)"),
			text("account_id", "Member / account ID"),
			number("retirement_age", "Retirement age"),
		),
		sub("401k / occupational plan",
			text("plan_name", "Plan name"),
			text("provider", "Plan provider"),
			text("account_id", "Account ID"),
			number("vested_pct", "Vested %"),
		),
		sub("Gratuity / end-of-service",
			text("employer", "Employer"),
			text("country", "Country"),
			number("years_service", "Years of service"),
		),
		sub("Stock options / RSUs",
			text("employer", "Employer"),
			choice("plan_type", "Plan type", "RSU", "Option", "ESPP", "PSU"),
			date("grant_date", "Grant date"),
			text("vesting_schedule", "Vesting schedule (text)"),
		),
	),
	cat("Insurance Assets",
		sub("Whole life / UL policy",
			text("insurer", "Insurer"),
			text("policy_number", "Policy number"),
			text("life_assured", "Life assured"),
			number("sum_assured", "Sum assured / face value"),
			date("start_date", "Policy start date"),
			date("maturity_date", "Maturity date (if any)"),
		),
		sub("Endowment policy",
			text("insurer", "Insurer"),
			text("policy_number", "Policy number"),
			date("maturity_date", "Maturity date"),
		),
		sub("Investment-linked policy (ILP)",
			text("insurer", "Insurer"),
			text("policy_number", "Policy number"),
			text("fund_allocation", "Funds allocation (summary)"),
		),
		sub("Annuity",
			text("insurer", "Insurer"),
			date("start_date", "Payout start date"),
			number("payout_amount", "Periodic payout amount"),
		),
	),
	cat("Private Market Investments",
		sub("PE / VC fund",
			text("fund_name", "Fund name"),
			text("manager", "Manager / GP"),
			choice("vehicle_type", "Vehicle type", "PE Fund", "VC Fund", "Private Credit", "Hedge Fund"),
			number("commitment", "Total commitment"),
			number("capital_called", "Capital called to date"),
			number("distributions", "Distributions received"),
			number("vintage_year", "Vintage year"),
		),
		sub("Direct / co-investment",
			text("company", "Company / asset name"),
			text("jurisdiction", "Jurisdiction"),
			number("stake_pct", "Stake %"),
			number("capital_invested", "Capital invested"),
		),
	),
	cat("Business & Professional Interests",
		sub("Private company shares",
			text("company", "Company name"),
			text("jurisdiction", "Jurisdiction"),
			text("entity_type", "Entity type"),
			number("stake_pct", "Stake %"),
		),
		sub("Partnership / LLP interest",
			text("entity_name", "Entity name"),
			text("role", "Role (Partner / Member)"),
		),
		sub("Franchise rights",
			text("brand", "Franchise brand"),
			text("territory", "Territory"),
		),
	),
	cat("Digital & Crypto Assets",
		sub("Cryptocurrency",
			text("token", "Token (e.g. BTC, ETH)"),
			text("wallet", "Wallet / exchange"),
			number("quantity", "Quantity"),
			number("reference_price", "Reference price"),
		),
		sub("NFT / digital collectible",
			text("collection", "Collection / project"),
			text("token_id", "Token ID"),
			text("platform", "Platform"),
		),
		sub("Website / online business",
			text("url", "Website / platform URL"),
			number("last12_rev", "Last 12m revenue"),
		),
	),
	cat("Luxury & Collectible Assets",
		sub("Art / painting",
			text("artist", "Artist"),
			text("title", "Title of work"),
			number("year", "Year"),
			text("certificate", "Certificate / provenance"),
		),
		sub("Watch / jewellery",
			text("brand", "Brand"),
			text("model", "Model / reference"),
			text("serial", "Serial number"),
		),
		sub("Car / vehicle",
			text("make", "Make"),
			text("model", "Model"),
			number("year", "Year"),
			text("registration", "Registration number"),
		),
	),
	cat("Claims & Receivables",
		sub("Loan to individual",
			text("counterparty", "Borrower name"),
			text("purpose", "Purpose"),
			text("agreement_no", "Loan agreement reference"),
			number("interest_rate", "Interest rate (%)"),
			date("due_date", "Due date"),
		),
		sub("Loan to company",
			text("counterparty", "Company name"),
			text("purpose", "Purpose"),
			number("interest_rate", "Interest rate (%)"),
		),
		sub("Tax refund receivable",
			text("jurisdiction", "Jurisdiction"),
			text("tax_year", "Tax year"),
		),
		sub("Security deposit",
			text("counterparty", "Counterparty / landlord"),
			text("purpose", "Purpose (rental, utilities, etc.)"),
		),
	),
}
