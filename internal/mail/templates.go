package mail

import (
	"fmt"
	"html/template"
	"strings"
)

// Message bodies mirror the storefront's French-language notifications.

var welcomeTmpl = template.Must(template.New("welcome").Parse(`<h1>Inscription réussie !</h1>
<p>Bonjour {{.Name}},</p>
<p>Votre inscription sur le site e-commerce BICC a été réalisée avec succès.</p>
<p>Voici vos informations :</p>
<ul>
<li>Nom : {{.Name}}</li>
<li>Email : {{.Email}}</li>
<li>Adresse : {{.Address}}</li>
<li>Rôle : {{.RoleLabel}}</li>
</ul>
<p>Merci de votre confiance !</p>`))

// Welcome renders the post-signup greeting.
func Welcome(name, email, address, roleLabel string) (subject, body string) {
	var sb strings.Builder
	_ = welcomeTmpl.Execute(&sb, map[string]string{
		"Name":      name,
		"Email":     email,
		"Address":   address,
		"RoleLabel": roleLabel,
	})
	return "Bienvenue sur BICC", sb.String()
}

// VerificationCode renders the 6-digit e-mail verification message.
func VerificationCode(code int) (subject, body string) {
	return "Verification Code", fmt.Sprintf("<h2>Verification code is : %06d</h2>", code)
}

// EmailVerified renders the post-verification confirmation.
func EmailVerified() (subject, body string) {
	return "Email Verified", "<h2>Email verification is complete</h2>"
}

// OrderLine is one row of the confirmation table.
type OrderLine struct {
	ProductName string
	Quantity    int
	SubTotal    float64
}

var orderTmpl = template.Must(template.New("order").Parse(`<html><head><style>
.header{width:400px;background-color:#04AA6D;color:white;padding:10px 20px;}
table{border-collapse:collapse;width:400px;}
td,th{border:1px solid #ddd;padding:8px;}
th{padding-top:12px;padding-bottom:12px;text-align:left;background-color:#04AA6D;color:white;}
</style></head><body>
<h1 class='header'>Commande passée avec succès</h1>
<p>Votre commande a été enregistrée. Voici le détail :</p>
<table><tr><th>Produit</th><th>Quantité</th><th>Prix</th></tr>
{{range .}}<tr><td>{{.ProductName}}</td><td>{{.Quantity}}</td><td>{{printf "%.2f" .SubTotal}}</td></tr>
{{end}}</table></body></html>`))

// OrderConfirmation renders the per-item summary sent after placement.
func OrderConfirmation(lines []OrderLine) (subject, body string) {
	var sb strings.Builder
	_ = orderTmpl.Execute(&sb, lines)
	return "Commande passée avec succès", sb.String()
}

var contactTmpl = template.Must(template.New("contact").Parse(`<h2>Contact client</h2>
<p><b>Nom :</b> {{.Name}}</p>
<p><b>Email :</b> {{.Email}}</p>
<p><b>Sujet :</b> {{.Subject}}</p>
<p><b>Message :</b><br>{{.Message}}</p>`))

// Contact renders the contact-form relay sent to the shop address.
func Contact(name, email, subj, message string) (subject, body string) {
	var sb strings.Builder
	_ = contactTmpl.Execute(&sb, map[string]string{
		"Name":    name,
		"Email":   email,
		"Subject": subj,
		"Message": message,
	})
	return "Contact client : " + subj, sb.String()
}

var complaintTmpl = template.Must(template.New("complaint").Parse(`<b>Nouvelle réclamation reçue :</b><br>
<b>Nom:</b> {{.CustomerName}}<br>
<b>Email:</b> {{.CustomerEmail}}<br>
<b>Adresse:</b> {{.CustomerAddress}}<br>
<b>Sujet:</b> {{.Subject}}<br>
<b>Description:</b> {{.Description}}<br>`))

// ComplaintFields carries the complaint form content.
type ComplaintFields struct {
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	Subject         string
	Description     string
}

// Complaint renders the admin-notification body for a customer complaint.
func Complaint(f ComplaintFields) (subject, body string) {
	var sb strings.Builder
	_ = complaintTmpl.Execute(&sb, f)
	return "Nouvelle réclamation client", sb.String()
}
