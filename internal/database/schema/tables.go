package schema

// TableDefinitions contains all the SQL statements to create the database tables.
// Don't put REFERENCES and don't put CHECK constraints in the CREATE TABLE statements
var TableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS tenants (
		id UUID PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		slug VARCHAR(64) UNIQUE NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(255),
		role VARCHAR(20) NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL,
		slug VARCHAR(8) UNIQUE NOT NULL,
		email VARCHAR(255) NOT NULL,
		first_name VARCHAR(255),
		last_name VARCHAR(255),
		full_name VARCHAR(511),
		company VARCHAR(255),
		phone VARCHAR(50),
		website VARCHAR(255),
		status VARCHAR(20) NOT NULL DEFAULT 'ACTIVE',
		tags TEXT[] NOT NULL DEFAULT '{}',
		custom_fields JSONB NOT NULL DEFAULT '{}',
		google_account_id VARCHAR(255),
		gtm_container_id VARCHAR(255),
		gtm_workspace_id VARCHAR(255),
		ga4_property_ids TEXT[] NOT NULL DEFAULT '{}',
		google_ads_account_ids TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	// The expression index enforces email uniqueness per tenant
	// regardless of casing. Its name must keep "email" in it, the
	// repository maps violations by constraint name.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_tenant_email
		ON customers (tenant_id, LOWER(email))`,
	`CREATE INDEX IF NOT EXISTS idx_customers_tenant_status ON customers (tenant_id, status)`,
	`CREATE TABLE IF NOT EXISTS trackings (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL,
		customer_id UUID NOT NULL,
		name VARCHAR(255) NOT NULL,
		type VARCHAR(50) NOT NULL,
		description TEXT,
		selector VARCHAR(512),
		url_pattern VARCHAR(512),
		config JSONB NOT NULL DEFAULT '{}',
		destinations TEXT[] NOT NULL DEFAULT '{}',
		ga4_event_name VARCHAR(255),
		ga4_event_params JSONB,
		ads_conversion_value DECIMAL,
		status VARCHAR(20) NOT NULL,
		conversion_action_id VARCHAR(255),
		last_error TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_trackings_tenant_customer ON trackings (tenant_id, customer_id)`,
	`CREATE INDEX IF NOT EXISTS idx_trackings_tenant_status ON trackings (tenant_id, status)`,
	`CREATE TABLE IF NOT EXISTS email_templates (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL,
		type VARCHAR(50) NOT NULL,
		subject VARCHAR(998) NOT NULL,
		html_content TEXT NOT NULL,
		text_content TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		available_variables JSONB NOT NULL DEFAULT '{}',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (tenant_id, type)
	)`,
	`CREATE TABLE IF NOT EXISTS email_logs (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL,
		recipient VARCHAR(255) NOT NULL,
		subject VARCHAR(998) NOT NULL,
		template_type VARCHAR(50) NOT NULL,
		status VARCHAR(20) NOT NULL,
		error TEXT,
		customer_id UUID,
		created_at TIMESTAMP NOT NULL,
		sent_at TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_email_logs_tenant_created ON email_logs (tenant_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_email_logs_tenant_status ON email_logs (tenant_id, status)`,
	`CREATE TABLE IF NOT EXISTS consent_records (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL,
		anonymous_id VARCHAR(64) NOT NULL,
		necessary BOOLEAN NOT NULL DEFAULT TRUE,
		analytics BOOLEAN NOT NULL DEFAULT FALSE,
		marketing BOOLEAN NOT NULL DEFAULT FALSE,
		user_agent VARCHAR(512),
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (tenant_id, anonymous_id)
	)`,
	`CREATE TABLE IF NOT EXISTS subscribers (
		id UUID PRIMARY KEY,
		tenant_id UUID NOT NULL,
		email VARCHAR(255) NOT NULL,
		opted_in BOOLEAN NOT NULL DEFAULT TRUE,
		unsubscribed_at TIMESTAMP,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		UNIQUE (tenant_id, email)
	)`,
	`CREATE TABLE IF NOT EXISTS site_settings (
		tenant_id UUID PRIMARY KEY,
		consent_expiry_days INTEGER NOT NULL,
		banner_delay_ms INTEGER NOT NULL,
		email_triggers JSONB NOT NULL DEFAULT '{}',
		newsletter_double_opt_in BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
}

// TableNames lists the tables in creation order, used to drop them in
// reverse when cleaning a database.
var TableNames = []string{
	"tenants",
	"users",
	"customers",
	"trackings",
	"email_templates",
	"email_logs",
	"consent_records",
	"subscribers",
	"site_settings",
}
