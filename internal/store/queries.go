package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// Store queries.
const (
	storeColumns = `id, user_id, COALESCE(ebay_user_id, ''), COALESCE(ebay_username, ''), store_name,
		COALESCE(access_token, ''), COALESCE(refresh_token, ''), token_expiry,
		marketplace_id, COALESCE(payment_policy_id, ''), COALESCE(fulfillment_policy_id, ''),
		COALESCE(return_policy_id, ''), COALESCE(merchant_location_key, ''),
		active, created_at, updated_at`

	queryDeactivateUserStores = `
		UPDATE stores SET active = false, updated_at = now()
		WHERE user_id = $1 AND active`

	queryCreateStore = `
		INSERT INTO stores (
			user_id, ebay_user_id, ebay_username, store_name,
			access_token, refresh_token, token_expiry, marketplace_id,
			payment_policy_id, fulfillment_policy_id, return_policy_id, merchant_location_key,
			active
		) VALUES (
			@user_id, NULLIF(@ebay_user_id, ''), NULLIF(@ebay_username, ''), @store_name,
			@access_token, @refresh_token, @token_expiry, @marketplace_id,
			NULLIF(@payment_policy_id, ''), NULLIF(@fulfillment_policy_id, ''),
			NULLIF(@return_policy_id, ''), NULLIF(@merchant_location_key, ''),
			true
		)
		RETURNING id, created_at, updated_at`

	queryGetStore = `SELECT ` + storeColumns + ` FROM stores WHERE id = $1`

	queryGetActiveStore = `SELECT ` + storeColumns + ` FROM stores WHERE user_id = $1 AND active`

	queryListConnectedStores = `SELECT ` + storeColumns + `
		FROM stores
		WHERE active AND access_token IS NOT NULL
		ORDER BY created_at`

	queryUpdateStoreTokens = `
		UPDATE stores SET
			access_token = $2,
			token_expiry = $3,
			updated_at = now()
		WHERE id = $1`

	queryUpdateStoreDefaults = `
		UPDATE stores SET
			marketplace_id = COALESCE(NULLIF(@marketplace_id, ''), marketplace_id),
			payment_policy_id = COALESCE(NULLIF(@payment_policy_id, ''), payment_policy_id),
			fulfillment_policy_id = COALESCE(NULLIF(@fulfillment_policy_id, ''), fulfillment_policy_id),
			return_policy_id = COALESCE(NULLIF(@return_policy_id, ''), return_policy_id),
			merchant_location_key = COALESCE(NULLIF(@merchant_location_key, ''), merchant_location_key),
			updated_at = now()
		WHERE id = @id`

	queryClearTokensByEbayIdentity = `
		UPDATE stores SET
			access_token = NULL,
			refresh_token = NULL,
			token_expiry = NULL,
			active = false,
			updated_at = now()
		WHERE ($1 <> '' AND ebay_user_id = $1)
			OR ($2 <> '' AND ebay_username = $2)`
)

// Draft queries.
const (
	draftColumns = `d.id, d.store_id, d.status, d.images, d.marketplace_id,
		d.title, d.description, d.category_id, d.condition, d.price, d.quantity, d.sku,
		d.specifics, d.ai_notes, d.ai_extracted_text, d.ai_raw, d.error,
		COALESCE(d.offer_id, ''), COALESCE(d.published_listing_id::text, ''),
		d.created_at, d.updated_at, cardinality(d.images)`

	// draftSummaryColumns omits the image payloads.
	draftSummaryColumns = `d.id, d.store_id, d.status, '{}'::text[], d.marketplace_id,
		d.title, d.description, d.category_id, d.condition, d.price, d.quantity, d.sku,
		d.specifics, d.ai_notes, d.ai_extracted_text, NULL::jsonb, d.error,
		COALESCE(d.offer_id, ''), COALESCE(d.published_listing_id::text, ''),
		d.created_at, d.updated_at, cardinality(d.images)`

	queryCreateDraft = `
		INSERT INTO drafts (
			store_id, status, images, marketplace_id,
			title, description, category_id, condition, price, quantity, sku,
			specifics, ai_notes, ai_extracted_text, ai_raw, error
		) VALUES (
			@store_id, @status, @images, @marketplace_id,
			@title, @description, @category_id, @condition, @price, GREATEST(@quantity::int, 1), @sku,
			@specifics, @ai_notes, @ai_extracted_text, @ai_raw, @error
		)
		RETURNING id, created_at, updated_at`

	queryGetDraft = `SELECT ` + draftColumns + ` FROM drafts d WHERE d.id = $1`

	queryGetDraftForUser = `SELECT ` + draftColumns + `
		FROM drafts d
		JOIN stores s ON s.id = d.store_id
		WHERE d.id = $1 AND s.user_id = $2`

	queryUpdateDraft = `
		UPDATE drafts SET
			status = @status,
			marketplace_id = @marketplace_id,
			title = @title,
			description = @description,
			category_id = @category_id,
			condition = @condition,
			price = @price,
			quantity = GREATEST(@quantity::int, 1),
			sku = @sku,
			specifics = @specifics,
			ai_notes = @ai_notes,
			ai_extracted_text = @ai_extracted_text,
			ai_raw = @ai_raw,
			error = @error,
			updated_at = now()
		WHERE id = @id AND status = ANY(@from)
		RETURNING updated_at`

	querySetDraftStatus = `
		UPDATE drafts SET status = $2, error = '', updated_at = now()
		WHERE id = $1`

	queryTransitionDraftStatus = `
		UPDATE drafts SET status = $3, error = '', updated_at = now()
		WHERE id = $1 AND status = ANY($2)`

	querySetDraftOfferID = `
		UPDATE drafts SET offer_id = $2, updated_at = now()
		WHERE id = $1`

	querySetDraftCategory = `
		UPDATE drafts SET category_id = $2, updated_at = now()
		WHERE id = $1`

	queryMarkDraftPublished = `
		UPDATE drafts SET
			status = 'published',
			published_listing_id = $2,
			error = '',
			updated_at = now()
		WHERE id = $1`

	queryMarkDraftFailed = `
		UPDATE drafts SET status = 'failed', error = $2, updated_at = now()
		WHERE id = $1`
)

// Listing queries.
const (
	listingColumns = `l.id, l.store_id, l.ebay_offer_id, l.ebay_listing_id, l.sku, l.title,
		l.description, l.price, l.quantity, l.status, l.marketplace_id, l.category_id,
		l.condition, l.images, l.listed_at, l.created_at, l.updated_at`

	// Fields the offer sync cannot see keep their stored values when the
	// incoming row leaves them empty.
	queryUpsertListingByOfferID = `
		INSERT INTO listings (
			store_id, ebay_offer_id, ebay_listing_id, sku, title, description,
			price, quantity, status, marketplace_id, category_id, condition,
			images, listed_at
		) VALUES (
			@store_id, @ebay_offer_id, @ebay_listing_id, @sku, @title, @description,
			@price, @quantity, @status, @marketplace_id, @category_id, @condition,
			@images, @listed_at
		)
		ON CONFLICT (ebay_offer_id) DO UPDATE SET
			store_id = EXCLUDED.store_id,
			ebay_listing_id = COALESCE(EXCLUDED.ebay_listing_id, listings.ebay_listing_id),
			sku = EXCLUDED.sku,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			quantity = EXCLUDED.quantity,
			status = EXCLUDED.status,
			marketplace_id = COALESCE(EXCLUDED.marketplace_id, listings.marketplace_id),
			category_id = COALESCE(EXCLUDED.category_id, listings.category_id),
			condition = COALESCE(EXCLUDED.condition, listings.condition),
			images = CASE WHEN cardinality(EXCLUDED.images) > 0 THEN EXCLUDED.images ELSE listings.images END,
			listed_at = COALESCE(EXCLUDED.listed_at, listings.listed_at),
			updated_at = now()
		RETURNING id, created_at, updated_at`

	queryGetListingForUser = `SELECT ` + listingColumns + `
		FROM listings l
		JOIN stores s ON s.id = l.store_id
		WHERE l.id = $1 AND s.user_id = $2`

	queryUpdateListingPriceQuantity = `
		UPDATE listings SET
			price = COALESCE($2, price),
			quantity = COALESCE($3, quantity),
			updated_at = now()
		WHERE id = $1`

	queryUpdateListingStatus = `
		UPDATE listings SET status = $2, updated_at = now()
		WHERE id = $1`

	queryMarkListingPublished = `
		UPDATE listings SET
			ebay_listing_id = COALESCE(NULLIF($2, ''), ebay_listing_id),
			status = 'active',
			listed_at = $3,
			updated_at = now()
		WHERE id = $1`
)
