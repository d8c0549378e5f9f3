package i18n

import "golang.org/x/text/language"

var catalogs = map[language.Tag]map[string]string{
	language.English: {
		"status.active":    "Active",
		"status.archived":  "Archived",
		"status.deleted":   "Deleted",
		"status.draft":     "Draft",
		"status.pending":   "Pending",
		"status.sent":      "Sent",
		"status.viewed":    "Viewed",
		"status.partial":   "Partial",
		"status.overdue":   "Overdue",
		"status.paid":      "Paid",
		"status.unpaid":    "Unpaid",
		"status.completed": "Completed",
		"status.refunded":  "Refunded",
		"status.approved":  "Approved",
		"status.logged":    "Logged",
		"status.invoiced":  "Invoiced",

		"text.document_is_deleted":       "The document has been deleted.",
		"text.document_is_archived":      "The document is archived.",
		"text.restore_document_to_active": "Restore the document to make it active again.",

		"text.invoice_has_payments_cannot_be_x": "An invoice with recorded payments cannot be set to %s.",
		"text.paid_invoice_cannot_be_x":         "A fully paid invoice cannot be set to %s.",
		"text.draft_invoice_cannot_be_x":        "A draft invoice cannot be set to %s.",
		"text.overdue_invoice_cannot_be_x":      "An overdue invoice cannot be set to %s.",
		"text.invoice_already_mailed_cannot_be_x": "An invoice that has already been e-mailed cannot be set to %s.",
		"text.quote_already_mailed_cannot_be_x":   "A quote that has already been e-mailed cannot be set to %s.",

		"text.create_a_payment_with_amount_less_than_x": "Create a payment with an amount less than %s.",
		"text.create_a_payment_of_x_or_more":            "Create a payment of %s or more.",
		"text.set_due_date_to_date_in_the_past":         "Set the due date to a date in the past.",
		"text.set_due_date_to_date_in_the_future":       "Set the due date to a date in the future.",
		"text.invoice_due_date_needs_to_be_delayed":     "The last generated invoice's due date needs to be delayed.",

		"text.refunded_payment_cannot_be_completed": "A refunded payment cannot be marked as completed.",
		"text.completed_payment_cannot_be_refunded": "A completed payment has nothing to refund.",
		"text.record_a_refund_for_this_payment":     "Record a refund for this payment.",
	},

	language.Portuguese: {
		"status.active":    "Ativo",
		"status.archived":  "Arquivado",
		"status.deleted":   "Eliminado",
		"status.draft":     "Rascunho",
		"status.pending":   "Pendente",
		"status.sent":      "Enviado",
		"status.viewed":    "Visualizado",
		"status.partial":   "Parcial",
		"status.overdue":   "Vencido",
		"status.paid":      "Pago",
		"status.unpaid":    "Não pago",
		"status.completed": "Concluído",
		"status.refunded":  "Reembolsado",
		"status.approved":  "Aprovado",
		"status.logged":    "Registado",
		"status.invoiced":  "Faturado",

		"text.document_is_deleted":       "O documento foi eliminado.",
		"text.document_is_archived":      "O documento está arquivado.",
		"text.restore_document_to_active": "Restaure o documento para o tornar ativo novamente.",

		"text.invoice_has_payments_cannot_be_x": "Uma fatura com pagamentos registados não pode passar a %s.",
		"text.paid_invoice_cannot_be_x":         "Uma fatura totalmente paga não pode passar a %s.",
		"text.draft_invoice_cannot_be_x":        "Uma fatura em rascunho não pode passar a %s.",
		"text.overdue_invoice_cannot_be_x":      "Uma fatura vencida não pode passar a %s.",
		"text.invoice_already_mailed_cannot_be_x": "Uma fatura já enviada por e-mail não pode passar a %s.",
		"text.quote_already_mailed_cannot_be_x":   "Um orçamento já enviado por e-mail não pode passar a %s.",

		"text.create_a_payment_with_amount_less_than_x": "Crie um pagamento com um valor inferior a %s.",
		"text.create_a_payment_of_x_or_more":            "Crie um pagamento de %s ou mais.",
		"text.set_due_date_to_date_in_the_past":         "Defina a data de vencimento para uma data no passado.",
		"text.set_due_date_to_date_in_the_future":       "Defina a data de vencimento para uma data no futuro.",
		"text.invoice_due_date_needs_to_be_delayed":     "A data de vencimento da última fatura gerada precisa de ser adiada.",

		"text.refunded_payment_cannot_be_completed": "Um pagamento reembolsado não pode ser marcado como concluído.",
		"text.completed_payment_cannot_be_refunded": "Um pagamento concluído não tem nada a reembolsar.",
		"text.record_a_refund_for_this_payment":     "Registe um reembolso para este pagamento.",
	},
}
