package main

import "Storefront/models"

type seedUser struct {
	Name     string
	Email    string
	Password string
	Address  string
}

type seedProduct struct {
	Name        string
	Description string
	Price       string
	Category    string
	Image       string
}

type seedOrder struct {
	Amount string
	Status string
}

var users = []seedUser{
	{"Ava", "ava@gmail.com", "8463456", "address1"},
	{"Tom", "tom@gmail.com", "8768963", "address2"},
	{"Olly", "olly@gmail.com", "9606590", "address3"},
	{"May", "may@gmail.com", "8763874", "address4"},
	{"Amelia", "amelia@gmail.com", "4674387", "address5"},
	{"Mia", "mia@gmail.com", "6386658", "address6"},
	{"John", "john@gmail.com", "6986366", "address7"},
	{"Dan", "dan@gmail.com", "8943009", "address8"},
}

// Prices keep their thousands separators; parseAmount strips them.
var products = []seedProduct{
	{"oraimo watch 3 Pro, 1.83", "BT call Smart Watch", "5,999", "watch", "https://ke.jumia.is/unsafe/fit-in/500x500/filters:fill(white)/product/04/1598351/1.jpg?5040"},
	{"oraimo Watch ES 2 1.95", "AMOLED IP68 Smart Watch", "4,500", "watch", "https://cdn-img.oraimo.com/fit-in/600x600/KE/product/2024/05/25/OSW-810.png"},
	{"oraimo Watch Nova V 2.01", "HD Video Watch Faces Smart Watch", "5,200", "watch", "https://cdn-img.oraimo.com/fit-in/600x600/KE/product/2024/06/20/OSW-802N.png"},
	{"oraimo Necklace Lite Call", "Vibration Wireless Headphones", "1,900", "headphones", "https://cdn-img.oraimo.com/fit-in/600x600/MA/product/2024/03/19/OEB-311.png"},
	{"oraimo Freepods pro + Hybrid ANC", "True Wireless Earbuds", "5,500", "earbuds", "https://cdn-img.oraimo.com/fit-in/600x600/MA/product/2024/05/20/OEB-E108DC.png"},
	{"oraimo Traveler Link 27", "27000mAh 12W Power Bank", "4,100", "powerbank", "https://cdn-img.oraimo.com/fit-in/600x600/KE/product/2024/06/28/opb-p5271-black.png"},
	{"oraimo BoomPop 2 ENC", "Over-Ear Wireless Headphones", "2,600", "headphones", "https://cdn-img.oraimo.com/fit-in/600x600/NG/album/ohp-610/ohp-610-black.png"},
	{"ZL02 Smart Watch", "H Full S Reen Sport Fitness Black", "2,690", "smartwatch", "https://ke.jumia.is/unsafe/fit-in/680x680/filters:fill(white)/product/37/523878/1.jpg?2248"},
	{"Samsung Galaxy A35 5G, 6.6", "256GB + 8GB RAM (Dual SIM), 5000mAh, Awesome Navy", "45,999", "phones", "https://ke.jumia.is/unsafe/fit-in/680x680/filters:fill(white)/product/34/2888232/1.jpg?2068"},
	{"Oppo Reno11 F 5G", "8GB+256GB, 64MP,5000mAh,(Dual Sim) Palm Green (2YR WRTY)", "46,999", "phones", "https://ke.jumia.is/unsafe/fit-in/680x680/filters:fill(white)/product/59/0881742/1.jpg?1487"},
	{"Samsung Galaxy A55 5G, 6.6", "256GB + 8GB RAM (Dual SIM), 5000mAh, Awesome Lilac", "55,499", "phones", "https://ke.jumia.is/unsafe/fit-in/680x680/filters:fill(white)/product/70/8221332/1.jpg?8433"},
	{"oraimo AirBuds 4 ENC", "True Wireless Earbuds", "2,100", "earbuds", "https://cdn-img.oraimo.com/fit-in/600x600/AE/product/2024/02/06/OTW-340-680-1.png"},
	{"oraimo FreePods Neo", "ENC True Wireless Earbuds", "2,200", "earbuds", "https://cdn-img.oraimo.com/fit-in/600x600/KE/product/2024/06/20/OTW-330S-black.png"},
}

var orders = []seedOrder{
	{"4,100", models.StatusPendingOrder},
	{"1,900", models.StatusPendingApproval},
	{"5,000", models.StatusInTransit},
	{"55,499", models.StatusShipping},
	{"5,200", models.StatusPendingPayment},
	{"4,100", models.StatusWaitingToBeShipped},
	{"2,100", models.StatusShippedToBranch},
	{"5,999", models.StatusDelivered},
	{"2,600", models.StatusShipping},
	{"4,500", models.StatusCancelled},
	{"4,100", models.StatusReturned},
}
