package taxonomy

// liabilityCategories is the full liability catalog. Order is presentation order.
var liabilityCategories = []category{
	cat("Home & Property Loans",
		sub("Home mortgage (primary residence)",
			text("lender", "Lender / bank"),
			choice("loan_type", "Loan type", "Amortising", "Interest-only"),
			number("interest_rate", "Interest rate (%)"),
			choice("rate_type", "Rate type", "Fixed", "Floating"),
			date("start_date", "Start date"),
			date("maturity_date", "Maturity date"),
			text("linked_property", "Linked property (name / ID)"),
			number("monthly_instalment", "Monthly instalment"),
		),
		sub("Investment property loan",
			text("lender", "Lender / bank"),
			number("interest_rate", "Interest rate (%)"),
			text("linked_property", "Linked property (name / ID)"),
		),
		sub("Construction / renovation loan",
			text("lender", "Lender / bank"),
			text("purpose", "Purpose"),
		),
	),
	cat("Personal Debt",
		sub("Credit card",
			text("issuer", "Issuer"),
			text("card_last4", "Card number (last 4)"),
			number("credit_limit", "Credit limit"),
			number("apr", "Annual interest rate (%)"),
			date("due_date", "Payment due date"),
		),
		sub("Personal loan",
			text("lender", "Lender"),
			text("purpose", "Purpose"),
			number("interest_rate", "Interest rate (%)"),
			date("start_date", "Start date"),
			date("maturity_date", "Maturity date"),
		),
		sub("BNPL / instalment plan",
			text("provider", "Provider"),
			text("item", "Item / purchase"),
			number("installment_amount", "Installment amount"),
			date("last_payment_date", "Last payment date"),
		),
	),
	cat("Business & Professional Liabilities",
		sub("Business term loan",
			text("borrowing_entity", "Borrowing entity"),
			text("lender", "Lender"),
			number("interest_rate", "Interest rate (%)"),
			date("maturity_date", "Maturity date"),
			text("security", "Security / collateral"),
		),
		sub("Working capital / overdraft",
			text("borrowing_entity", "Borrowing entity"),
			text("lender", "Lender"),
		),
		sub("Trade finance",
			text("borrowing_entity", "Borrowing entity"),
			text("instrument_type", "Instrument type (LC, BG, etc.)"),
		),
	),
	cat("Investment & Trading Leverage",
		sub("Margin loan",
			text("broker", "Broker"),
			text("account_id", "Account ID"),
			number("collateral_value", "Collateral value"),
		),
		sub("Securities-backed lending",
			text("bank", "Bank"),
			number("facility_limit", "Facility limit"),
		),
	),
	cat("Tax Liabilities",
		sub("Income tax payable",
			text("jurisdiction", "Jurisdiction"),
			text("tax_year", "Tax year"),
			date("due_date", "Due date"),
		),
		sub("Capital gains tax",
			text("jurisdiction", "Jurisdiction"),
			text("tax_year", "Tax year"),
		),
		sub("Property tax",
			text("jurisdiction", "Jurisdiction"),
			text("property_ref", "Property reference"),
		),
	),
	cat("Deferred & Instalment Obligations",
		sub("Instalment purchase",
			text("counterparty", "Counterparty"),
			text("item", "Item / service"),
		),
		sub("Deferred purchase price",
			text("counterparty", "Counterparty"),
			text("description", "Description"),
		),
	),
	cat("Other Payables & Accrued Expenses",
		sub("Accrued expense",
			text("counterparty", "Counterparty"),
			text("description", "Description"),
		),
		sub("Unpaid rent / utilities",
			text("counterparty", "Counterparty"),
			text("period", "Period"),
		),
	),
}
