package observability

const (
	MInventoryOps        MetricKey = "inventory_ops_total"
	MInventoryOpDuration MetricKey = "inventory_op_duration_seconds"
	MStoreOps            MetricKey = "store_ops_total"
	MStoreOpDuration     MetricKey = "store_op_duration_seconds"
	MLowStockChecks      MetricKey = "low_stock_checks_total"
)
