package entity

import "time"

// Tipos de actividad registrados en la bitácora de auditoría.
const (
	ActivityProjectCreated          = "PROJECT_CREATED"
	ActivityProjectUpdated          = "PROJECT_UPDATED"
	ActivityProjectStatusChanged    = "PROJECT_STATUS_CHANGED"
	ActivityProjectDeleted          = "PROJECT_DELETED"
	ActivityEmployeeCreated         = "EMPLOYEE_CREATED"
	ActivityEmployeeUpdated         = "EMPLOYEE_UPDATED"
	ActivityClientCreated           = "CLIENT_CREATED"
	ActivityClientUpdated           = "CLIENT_UPDATED"
	ActivitySupplierCreated         = "SUPPLIER_CREATED"
	ActivityItemCreated             = "INVENTORY_ITEM_CREATED"
	ActivityItemUpdated             = "INVENTORY_ITEM_UPDATED"
	ActivityMaterialRequestCreated  = "MATERIAL_REQUEST_CREATED"
	ActivityMaterialRequestApproved = "MATERIAL_REQUEST_APPROVED"
	ActivityMaterialRequestRejected = "MATERIAL_REQUEST_REJECTED"
	ActivityPurchaseOrderCreated    = "PURCHASE_ORDER_CREATED"
	ActivityPurchaseOrderApproved   = "PURCHASE_ORDER_APPROVED"
	ActivityPurchaseOrderReceived   = "PURCHASE_ORDER_RECEIVED"
	ActivityPurchaseOrderCancelled  = "PURCHASE_ORDER_CANCELLED"
	ActivityAssetCreated            = "ASSET_CREATED"
	ActivityAssetAssigned           = "ASSET_ASSIGNED"
	ActivityTransactionCreated      = "TRANSACTION_CREATED"
	ActivityInvoiceCreated          = "INVOICE_CREATED"
	ActivityInvoiceSent             = "INVOICE_SENT"
	ActivityInvoicePaid             = "INVOICE_PAID"
	ActivityInvoiceOverdue          = "INVOICE_OVERDUE"
)

// ActivityEntry entrada de la bitácora de auditoría. Colección append-only:
// no existe actualización ni borrado.
type ActivityEntry struct {
	ID         string
	CompanyID  string
	Type       string
	EntityKind string // project, employee, invoice…
	EntityID   string
	Summary    string
	UserID     string
	UserName   string
	CreatedAt  time.Time
}
